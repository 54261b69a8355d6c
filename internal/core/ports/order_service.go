package ports

import (
	"context"
	"time"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// GetOrderInput carries the parameters needed to retrieve a single order.
type GetOrderInput struct {
	OrderNumber string
	// Role and UserID enforce access: the "user" role only sees own orders.
	Role   string
	UserID string
}

// ListOrdersInput carries all parameters for the order list endpoints.
type ListOrdersInput struct {
	Role   string
	UserID string
	Status string
	Page   int
	Limit  int
}

// ListOrdersResult is returned by ListOrders.
type ListOrdersResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines checkout and order retrieval use cases.
type OrderService interface {
	// Checkout snapshots the user's cart into a new pending order and
	// clears the cart.
	Checkout(ctx context.Context, userID string) (*domain.Order, error)
	GetOrder(ctx context.Context, in GetOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, in ListOrdersInput) (*ListOrdersResult, error)
}

// OrderEventInput is the DTO passed from the transport layer to
// OrderEventService.
type OrderEventInput struct {
	OrderNumber string
	Status      string
	Timestamp   time.Time
	Source      string
	Notes       string
}

// OrderEventService processes back-office order status events.
type OrderEventService interface {
	Process(ctx context.Context, event OrderEventInput) error
}
