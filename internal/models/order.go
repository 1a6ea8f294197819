package models

import "time"

// order status
const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
)

// Order is order entity. Field tags match the persisted orders file
// and the /orders dump.
type Order struct {
	OrderID   string     `json:"order_id"`
	User      string     `json:"user,omitempty"`
	ServiceID string     `json:"service_id"`
	Target    string     `json:"target"`
	Quantity  int        `json:"quantity"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}
