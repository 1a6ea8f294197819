package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/denzstore/storepanel/internal/models"
)

// FileOrderRepository is an order store backed by a local JSON file.
// The whole collection is rewritten on every mutation, low volume only.
type FileOrderRepository struct {
	mu     sync.Mutex
	path   string
	orders []models.Order
}

// NewFileOrderRepository opens the orders file, creating it when absent
func NewFileOrderRepository(path string) (*FileOrderRepository, error) {
	r := &FileOrderRepository{path: path}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// AppendOrder inserts new order and persists the store
func (fr *FileOrderRepository) AppendOrder(ctx context.Context, order *models.Order) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	for i := range fr.orders {
		if fr.orders[i].OrderID == order.OrderID {
			return models.ErrConflictData
		}
	}

	fr.orders = append(fr.orders, *order)
	return fr.persistLocked()
}

// GetOrderByID returns order by id
func (fr *FileOrderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	for i := range fr.orders {
		if fr.orders[i].OrderID == id {
			cp := fr.orders[i]
			return &cp, nil
		}
	}
	return nil, models.ErrDataNotFound
}

// MarkOrderPaid transitions order to PAID exactly once and persists the store
func (fr *FileOrderRepository) MarkOrderPaid(ctx context.Context, id string, paidAt time.Time) (*models.Order, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	for i := range fr.orders {
		if fr.orders[i].OrderID != id {
			continue
		}
		if fr.orders[i].Status == models.OrderStatusPaid {
			return nil, models.ErrOrderAlreadyPaid
		}

		fr.orders[i].Status = models.OrderStatusPaid
		fr.orders[i].PaidAt = &paidAt

		if err := fr.persistLocked(); err != nil {
			return nil, err
		}
		cp := fr.orders[i]
		return &cp, nil
	}
	return nil, models.ErrDataNotFound
}

// ListOrders returns all stored orders
func (fr *FileOrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	orders := make([]models.Order, len(fr.orders))
	copy(orders, fr.orders)
	return orders, nil
}

func (fr *FileOrderRepository) load() error {
	b, err := os.ReadFile(fr.path)
	if err != nil {
		if os.IsNotExist(err) {
			fr.orders = []models.Order{}
			return fr.persistLocked()
		}
		return errors.Join(models.ErrInternalError, err)
	}
	if len(b) == 0 {
		fr.orders = []models.Order{}
		return nil
	}
	if err := json.Unmarshal(b, &fr.orders); err != nil {
		return errors.Join(models.ErrInternalError, err)
	}
	return nil
}

func (fr *FileOrderRepository) persistLocked() error {
	b, err := json.MarshalIndent(fr.orders, "", "  ")
	if err != nil {
		return errors.Join(models.ErrInternalError, err)
	}

	tmp := fr.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Join(models.ErrInternalError, err)
	}
	if err := os.Rename(tmp, fr.path); err != nil {
		return errors.Join(models.ErrInternalError, err)
	}
	return nil
}
