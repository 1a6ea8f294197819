package repository

import (
	"context"
	"sync"
	"time"

	"github.com/denzstore/storepanel/internal/models"
)

// OrderRepository is an in-memory order store. The paid transition is a
// check-and-set inside the store mutex so concurrent webhook deliveries
// for the same order can not both pass the not-yet-paid check.
type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	seq    []string
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*models.Order)}
}

// AppendOrder inserts new order to the store
func (or *OrderRepository) AppendOrder(ctx context.Context, order *models.Order) error {
	or.mu.Lock()
	defer or.mu.Unlock()

	if _, ok := or.orders[order.OrderID]; ok {
		return models.ErrConflictData
	}

	cp := *order
	or.orders[order.OrderID] = &cp
	or.seq = append(or.seq, order.OrderID)
	return nil
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	or.mu.Lock()
	defer or.mu.Unlock()

	order, ok := or.orders[id]
	if !ok {
		return nil, models.ErrDataNotFound
	}

	cp := *order
	return &cp, nil
}

// MarkOrderPaid transitions order to PAID exactly once and returns the
// updated order. Returns ErrDataNotFound for unknown id and
// ErrOrderAlreadyPaid when the order is already paid.
func (or *OrderRepository) MarkOrderPaid(ctx context.Context, id string, paidAt time.Time) (*models.Order, error) {
	or.mu.Lock()
	defer or.mu.Unlock()

	order, ok := or.orders[id]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	if order.Status == models.OrderStatusPaid {
		return nil, models.ErrOrderAlreadyPaid
	}

	order.Status = models.OrderStatusPaid
	order.PaidAt = &paidAt

	cp := *order
	return &cp, nil
}

// ListOrders returns all orders in insertion order
func (or *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	or.mu.Lock()
	defer or.mu.Unlock()

	orders := make([]models.Order, 0, len(or.seq))
	for _, id := range or.seq {
		orders = append(orders, *or.orders[id])
	}
	return orders, nil
}
