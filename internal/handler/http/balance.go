package handler

import (
	"context"
	"net/http"
)

type BalanceService interface {
	// GetBalances returns all user balances
	GetBalances(ctx context.Context) (map[string]float64, error)
}

// BalanceHandler represents HTTP handler for balance-related requests
type BalanceHandler struct {
	svc BalanceService
}

// NewBalanceHandler creates new BalanceHandler instance
func NewBalanceHandler(svc BalanceService) *BalanceHandler {
	return &BalanceHandler{svc: svc}
}

// ListBalances dumps the balance ledger, debug use
// 200 — successful request
// 500 — internal error
func (bh *BalanceHandler) ListBalances() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balances, err := bh.svc.GetBalances(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		respondJSON(w, http.StatusOK, balances)
	}
}
