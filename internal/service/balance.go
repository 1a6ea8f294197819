package service

import "context"

// BalanceService exposes the balance ledger
type BalanceService struct {
	repo LedgerRepository
}

// NewBalanceService creates new BalanceService instance
func NewBalanceService(repo LedgerRepository) *BalanceService {
	return &BalanceService{repo: repo}
}

// GetBalances returns all user balances
func (bs *BalanceService) GetBalances(ctx context.Context) (map[string]float64, error) {
	return bs.repo.Balances(ctx)
}
