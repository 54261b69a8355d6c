package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderPaid, OrderCancelled},
	OrderPaid:    {OrderShipped, OrderCancelled},
	OrderShipped: {OrderDelivered},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyCart = errors.New("cart is empty")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderLine is a cart line frozen at checkout time. Name and unit price
// are snapshots; later catalog edits must not rewrite past orders.
type OrderLine struct {
	ProductID      string `json:"product_id" bson:"product_id"`
	Name           string `json:"name" bson:"name"`
	UnitPriceCents int64  `json:"unit_price_cents" bson:"unit_price_cents"`
	Quantity       int64  `json:"quantity" bson:"quantity"`
}

// StatusHistoryEntry records a single status transition on an order.
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the checkout aggregate root.
type Order struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	OrderNumber   string               `json:"order_number" bson:"order_number"`
	UserID        string               `json:"user_id" bson:"user_id"`
	Lines         []OrderLine          `json:"lines" bson:"lines"`
	TotalCents    int64                `json:"total_cents" bson:"total_cents"`
	Currency      string               `json:"currency" bson:"currency"`
	Status        OrderStatus          `json:"status" bson:"status"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}

// OrderEvent represents a status update applied by the back office.
type OrderEvent struct {
	OrderNumber string
	Status      OrderStatus
	Timestamp   time.Time
	Source      string
	Notes       string
}
