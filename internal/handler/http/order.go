package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denzstore/storepanel/internal/logger"
	"github.com/denzstore/storepanel/internal/models"
	"github.com/denzstore/storepanel/internal/service"
	"go.uber.org/zap"
)

type OrderService interface {
	// PlaceOrder places an order and returns it with the QR payload
	PlaceOrder(ctx context.Context, user, svc, target string, quantity int) (*service.PlacedOrder, error)
	// ListOrders returns all stored orders
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	User     string `json:"user"`
	Service  string `json:"service"`
	Target   string `json:"target"`
	Quantity int    `json:"quantity"`
}

type createOrderResponse struct {
	Status  bool   `json:"status"`
	OrderID string `json:"order_id"`
	QRIS    string `json:"qris,omitempty"`
}

// CreateOrder places a new order
// 200 — order created
// 400 — invalid request data or provider failure
// 500 — internal error
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid order data")
			return
		}
		defer r.Body.Close()

		placed, err := oh.svc.PlaceOrder(r.Context(), req.User, req.Service, req.Target, req.Quantity)
		if err != nil {
			var upErr models.UpstreamError
			switch {
			case errors.Is(err, models.ErrInvalidRequest):
				respondError(w, http.StatusBadRequest, "invalid order data")
			case errors.As(err, &upErr):
				respondError(w, http.StatusBadRequest, upErr.Msg)
			default:
				logger.Log.Error("create order", zap.Error(err))
				respondError(w, http.StatusInternalServerError, "failed to create order")
			}
			return
		}

		respondJSON(w, http.StatusOK, createOrderResponse{
			Status:  true,
			OrderID: placed.Order.OrderID,
			QRIS:    placed.QRIS,
		})
	}
}

// ListOrders dumps all stored orders, debug use
// 200 — successful request
// 500 — internal error
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := oh.svc.ListOrders(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		respondJSON(w, http.StatusOK, orders)
	}
}

type testimonialResponse struct {
	Service  string `json:"service"`
	Quantity int    `json:"quantity"`
	OrderID  string `json:"order_id"`
}

// Testimonials projects paid orders for the public storefront page
// 200 — successful request
// 500 — internal error
func (oh *OrderHandler) Testimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := oh.svc.ListOrders(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := []testimonialResponse{}
		for _, order := range orders {
			if order.Status != models.OrderStatusPaid {
				continue
			}
			resp = append(resp, testimonialResponse{
				Service:  order.ServiceID,
				Quantity: order.Quantity,
				OrderID:  order.OrderID,
			})
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
