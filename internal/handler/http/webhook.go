package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

type WebhookService interface {
	// HandleNotification processes a payment-status notification
	HandleNotification(ctx context.Context, orderID, status string)
}

// WebhookHandler represents HTTP handler for payment notifications
type WebhookHandler struct {
	svc WebhookService
}

// NewWebhookHandler creates new WebhookHandler instance
func NewWebhookHandler(svc WebhookService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

type notificationRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// PaymentNotification accepts a payment-status notification. The
// gateway must not retry, so the response is 200 regardless of the
// internal outcome.
func (wh *WebhookHandler) PaymentNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req notificationRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			wh.svc.HandleNotification(r.Context(), req.OrderID, req.Status)
		}
		defer r.Body.Close()

		respondJSON(w, http.StatusOK, map[string]any{"status": true})
	}
}
