package service

import (
	"context"
	"errors"
	"time"

	"github.com/denzstore/storepanel/internal/logger"
	"github.com/denzstore/storepanel/internal/models"
	"go.uber.org/zap"
)

// statuses the payment gateway may deliver for a completed payment,
// case-sensitive
var paidStatuses = map[string]struct{}{
	"PAID":      {},
	"completed": {},
}

// LedgerRepository is interface for interacting with the balance ledger
type LedgerRepository interface {
	// Credit adds amount to the user balance
	Credit(ctx context.Context, user string, amount float64) error
	// Balances returns all user balances
	Balances(ctx context.Context) (map[string]float64, error)
}

// WebhookService reconciles payment notifications with stored orders
type WebhookService struct {
	repo   OrderRepository
	ledger LedgerRepository
}

// NewWebhookService creates new WebhookService instance
func NewWebhookService(repo OrderRepository, ledger LedgerRepository) *WebhookService {
	return &WebhookService{
		repo:   repo,
		ledger: ledger,
	}
}

// HandleNotification processes a payment-status notification. Unknown
// order ids, unrecognized statuses and repeated deliveries are all
// acknowledged without mutation, the paid transition happens exactly
// once and credits the user balance by the order amount.
func (ws *WebhookService) HandleNotification(ctx context.Context, orderID, status string) {
	if _, ok := paidStatuses[status]; !ok {
		logger.Log.Debug("ignoring notification status",
			zap.String("order_id", orderID),
			zap.String("status", status))
		return
	}

	order, err := ws.repo.MarkOrderPaid(ctx, orderID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDataNotFound):
			logger.Log.Debug("notification for unknown order", zap.String("order_id", orderID))
		case errors.Is(err, models.ErrOrderAlreadyPaid):
			logger.Log.Debug("duplicate paid notification", zap.String("order_id", orderID))
		default:
			logger.Log.Error("mark order paid", zap.String("order_id", orderID), zap.Error(err))
		}
		return
	}

	if err := ws.ledger.Credit(ctx, order.User, order.Amount); err != nil {
		logger.Log.Error("credit balance",
			zap.String("order_id", orderID),
			zap.String("user", order.User),
			zap.Error(err))
		return
	}

	logger.Log.Info("order paid",
		zap.String("order_id", order.OrderID),
		zap.String("user", order.User),
		zap.Float64("amount", order.Amount))
}
