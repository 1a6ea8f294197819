package service

import (
	"context"
	"strconv"
	"time"

	"github.com/denzstore/storepanel/internal/logger"
	"github.com/denzstore/storepanel/internal/models"
	"github.com/denzstore/storepanel/internal/payment"
	"github.com/denzstore/storepanel/internal/remoteconfig"
	"github.com/denzstore/storepanel/internal/upstream"
	"go.uber.org/zap"
)

// fallback payment reference used when the QR request fails
const fallbackQRIS = "dummy_qris"

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// AppendOrder inserts new order to the store
	AppendOrder(ctx context.Context, order *models.Order) error
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	// MarkOrderPaid transitions order to PAID exactly once
	MarkOrderPaid(ctx context.Context, id string, paidAt time.Time) (*models.Order, error)
	// ListOrders returns all stored orders
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// PlacedOrder is the result of a successful order placement
type PlacedOrder struct {
	Order models.Order
	QRIS  string
}

// OrderService implements order placement against the upstream provider
// and the payment gateway
type OrderService struct {
	repo     OrderRepository
	upstream *upstream.Client
	payment  *payment.Client
	creds    *remoteconfig.Provider
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, up *upstream.Client, pay *payment.Client, creds *remoteconfig.Provider) *OrderService {
	return &OrderService{
		repo:     repo,
		upstream: up,
		payment:  pay,
		creds:    creds,
	}
}

// PlaceOrder places an order with the upstream provider, requests a QR
// payment code for the total amount and appends a pending order to the
// store. A failed QR request does not fail the order, the fallback
// reference is used instead.
func (os *OrderService) PlaceOrder(ctx context.Context, user, service, target string, quantity int) (*PlacedOrder, error) {
	if user == "" || service == "" || target == "" || quantity <= 0 {
		return nil, models.ErrInvalidRequest
	}

	creds := os.creds.Current()

	res, err := os.upstream.CreateOrder(ctx, creds, service, target, quantity)
	if err != nil {
		return nil, err
	}

	orderID := res.OrderID
	if orderID == "" {
		orderID = "ORD" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	amount := res.Price * float64(quantity)

	qris, err := os.payment.CreateQRIS(ctx, creds, orderID, amount)
	if err != nil {
		// best effort, the order is still created
		logger.Log.Error("payment qr request failed", zap.String("order_id", orderID), zap.Error(err))
		qris = fallbackQRIS
	}

	order := models.Order{
		OrderID:   orderID,
		User:      user,
		ServiceID: service,
		Target:    target,
		Quantity:  quantity,
		Amount:    amount,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	if err := os.repo.AppendOrder(ctx, &order); err != nil {
		return nil, err
	}

	logger.Log.Info("order created",
		zap.String("order_id", order.OrderID),
		zap.String("service", order.ServiceID),
		zap.Float64("amount", order.Amount))

	return &PlacedOrder{Order: order, QRIS: qris}, nil
}

// ListOrders returns all stored orders
func (os *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return os.repo.ListOrders(ctx)
}
