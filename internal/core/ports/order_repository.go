package ports

import (
	"context"
	"time"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// ListOrdersFilter carries query parameters for listing orders.
// UserID is always enforced by the service layer for shopper requests.
type ListOrdersFilter struct {
	UserID string // empty = no filter (admin); non-empty = scoped to user
	Status string // optional: filter by order status
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by service)
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	// FindByNumber retrieves an order by order number. When userID is
	// non-empty, the query is additionally filtered by user_id.
	FindByNumber(ctx context.Context, orderNumber, userID string) (*domain.Order, error)
	// List returns a page of orders matching filter and the total count.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
}

// OrderEventRepository handles event persistence and atomic order status
// updates.
type OrderEventRepository interface {
	// UpdateOrderStatus atomically sets the order's new status and
	// appends a history entry.
	UpdateOrderStatus(
		ctx context.Context,
		orderNumber string,
		status domain.OrderStatus,
		ts time.Time,
		notes string,
	) error

	// InsertEvent persists an event to the order_events audit collection.
	InsertEvent(ctx context.Context, event *domain.OrderEvent) error
}
