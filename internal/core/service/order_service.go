package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// OrderService implements checkout and order retrieval.
type OrderService struct {
	orders   ports.OrderRepository
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, carts ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, products: products, logger: logger}
}

// Checkout freezes the user's cart into a pending order. Line name and
// unit price are snapshots of the catalog at checkout time.
func (s *OrderService) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderNumber: uuid.NewString(),
		UserID:      userID,
		Status:      domain.OrderPending,
		CreatedAt:   now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.OrderPending, Timestamp: now, Notes: "checkout"},
		},
	}

	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		line := domain.OrderLine{
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPriceCents: product.PriceCents,
			Quantity:       item.Quantity,
		}
		order.Lines = append(order.Lines, line)
		order.TotalCents += line.UnitPriceCents * line.Quantity
		if order.Currency == "" {
			order.Currency = product.Currency
		}
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create order")
		return nil, err
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		// The order exists; a stale cart is recoverable by the shopper.
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().Str("order_number", order.OrderNumber).Str("user_id", userID).Int64("total_cents", order.TotalCents).Msg("order created")
	return order, nil
}

// GetOrder retrieves one order. The "user" role is restricted to its own
// orders; a foreign order number resolves to not-found, not forbidden,
// so order numbers are not probeable.
func (s *OrderService) GetOrder(ctx context.Context, in ports.GetOrderInput) (*domain.Order, error) {
	scopeUser := in.UserID
	if in.Role == domain.RoleAdmin {
		scopeUser = ""
	}
	return s.orders.FindByNumber(ctx, in.OrderNumber, scopeUser)
}

func (s *OrderService) ListOrders(ctx context.Context, in ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	filter := ports.ListOrdersFilter{
		UserID: in.UserID,
		Status: in.Status,
		Page:   page,
		Limit:  limit,
	}
	if in.Role == domain.RoleAdmin {
		filter.UserID = ""
	}

	items, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListOrdersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
