package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/denzstore/storepanel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()

	newOrder := func(id string) *models.Order {
		return &models.Order{
			OrderID:   id,
			User:      "u1",
			ServiceID: "s1",
			Target:    "t1",
			Quantity:  1,
			Amount:    100,
			Status:    models.OrderStatusPending,
			CreatedAt: time.Now(),
		}
	}

	t.Run("append and get", func(t *testing.T) {
		repo := NewOrderRepository()
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X1")))

		order, err := repo.GetOrderByID(ctx, "X1")
		require.NoError(t, err)
		assert.Equal(t, "X1", order.OrderID)

		_, err = repo.GetOrderByID(ctx, "X2")
		assert.ErrorIs(t, err, models.ErrDataNotFound)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		repo := NewOrderRepository()
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X1")))
		assert.ErrorIs(t, repo.AppendOrder(ctx, newOrder("X1")), models.ErrConflictData)
	})

	t.Run("mark paid transitions once", func(t *testing.T) {
		repo := NewOrderRepository()
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X1")))

		paidAt := time.Now()
		order, err := repo.MarkOrderPaid(ctx, "X1", paidAt)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaid, order.Status)
		require.NotNil(t, order.PaidAt)
		assert.Equal(t, paidAt, *order.PaidAt)

		_, err = repo.MarkOrderPaid(ctx, "X1", time.Now())
		assert.ErrorIs(t, err, models.ErrOrderAlreadyPaid)

		_, err = repo.MarkOrderPaid(ctx, "X9", time.Now())
		assert.ErrorIs(t, err, models.ErrDataNotFound)
	})

	t.Run("concurrent paid transitions succeed once", func(t *testing.T) {
		repo := NewOrderRepository()
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X1")))

		var wg sync.WaitGroup
		transitions := make(chan struct{}, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.MarkOrderPaid(ctx, "X1", time.Now()); err == nil {
					transitions <- struct{}{}
				}
			}()
		}
		wg.Wait()
		close(transitions)

		assert.Len(t, transitions, 1)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		repo := NewOrderRepository()
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X1")))
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X2")))
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X3")))

		orders, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "X1", orders[0].OrderID)
		assert.Equal(t, "X2", orders[1].OrderID)
		assert.Equal(t, "X3", orders[2].OrderID)
	})

	t.Run("returned orders are copies", func(t *testing.T) {
		repo := NewOrderRepository()
		require.NoError(t, repo.AppendOrder(ctx, newOrder("X1")))

		order, err := repo.GetOrderByID(ctx, "X1")
		require.NoError(t, err)
		order.Status = models.OrderStatusPaid

		stored, err := repo.GetOrderByID(ctx, "X1")
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, stored.Status)
	})
}

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()

	repo := NewLedgerRepository()
	require.NoError(t, repo.Credit(ctx, "u1", 1000))
	require.NoError(t, repo.Credit(ctx, "u1", 500))
	require.NoError(t, repo.Credit(ctx, "u2", 250))

	balances, err := repo.Balances(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(1500), balances["u1"])
	assert.Equal(t, float64(250), balances["u2"])

	// dump is a copy
	balances["u1"] = 0
	balances, err = repo.Balances(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(1500), balances["u1"])
}
