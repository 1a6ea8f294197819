package repository

import (
	"context"
	"sync"
)

// LedgerRepository is an in-memory credit-only balance ledger
type LedgerRepository struct {
	mu       sync.Mutex
	balances map[string]float64
}

// NewLedgerRepository creates new LedgerRepository instance
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{balances: make(map[string]float64)}
}

// Credit adds amount to the user balance
func (lr *LedgerRepository) Credit(ctx context.Context, user string, amount float64) error {
	lr.mu.Lock()
	lr.balances[user] += amount
	lr.mu.Unlock()
	return nil
}

// Balances returns a copy of all user balances
func (lr *LedgerRepository) Balances(ctx context.Context) (map[string]float64, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	balances := make(map[string]float64, len(lr.balances))
	for user, amount := range lr.balances {
		balances[user] = amount
	}
	return balances, nil
}
