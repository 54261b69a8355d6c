package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

func newOrderSvc(orders *stubOrderRepo, carts *stubCartRepo, products *stubProductRepo) *OrderService {
	return NewOrderService(orders, carts, products, zerolog.Nop())
}

func TestOrderService_Checkout_HappyPath(t *testing.T) {
	products := newStubProductRepo()
	seedProduct(products, "p1", 1000, 5)
	seedProduct(products, "p2", 2500, 5)
	carts := newStubCartRepo()
	orders := newStubOrderRepo()
	svc := newOrderSvc(orders, carts, products)

	cartSvc := NewCartService(carts, newStubWishlistRepo(), products)
	for id, qty := range map[string]int64{"p1": 2, "p2": 1} {
		if err := cartSvc.AddItem(context.Background(), "user_1", id, qty); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	order, err := svc.Checkout(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.OrderNumber == "" {
		t.Error("expected assigned order number")
	}
	if order.Status != domain.OrderPending {
		t.Errorf("expected pending, got %q", order.Status)
	}
	if order.TotalCents != 4500 {
		t.Errorf("expected total 4500, got %d", order.TotalCents)
	}
	if len(order.Lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(order.Lines))
	}
	if len(order.StatusHistory) != 1 || order.StatusHistory[0].Status != domain.OrderPending {
		t.Errorf("expected initial history entry, got %+v", order.StatusHistory)
	}
	if len(carts.cart("user_1").Items) != 0 {
		t.Error("expected cart cleared after checkout")
	}
}

func TestOrderService_Checkout_SnapshotsPrices(t *testing.T) {
	products := newStubProductRepo()
	seedProduct(products, "p1", 1000, 5)
	carts := newStubCartRepo()
	orders := newStubOrderRepo()
	svc := newOrderSvc(orders, carts, products)

	cartSvc := NewCartService(carts, newStubWishlistRepo(), products)
	if err := cartSvc.AddItem(context.Background(), "user_1", "p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := svc.Checkout(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// A later price change must not rewrite the order line.
	products.byID["p1"].PriceCents = 9999

	stored, err := orders.FindByNumber(context.Background(), order.OrderNumber, "user_1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Lines[0].UnitPriceCents != 1000 {
		t.Errorf("expected snapshot price 1000, got %d", stored.Lines[0].UnitPriceCents)
	}
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	svc := newOrderSvc(newStubOrderRepo(), newStubCartRepo(), newStubProductRepo())

	if _, err := svc.Checkout(context.Background(), "user_1"); !errors.Is(err, domain.ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got: %v", err)
	}
}

func TestOrderService_Checkout_CartClearFailureIsNonFatal(t *testing.T) {
	products := newStubProductRepo()
	seedProduct(products, "p1", 1000, 5)
	carts := newStubCartRepo()
	svc := newOrderSvc(newStubOrderRepo(), carts, products)

	cartSvc := NewCartService(carts, newStubWishlistRepo(), products)
	if err := cartSvc.AddItem(context.Background(), "user_1", "p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	carts.clearErr = errors.New("mongo unavailable")
	if _, err := svc.Checkout(context.Background(), "user_1"); err != nil {
		t.Fatalf("expected cart clear failure to be non-fatal, got: %v", err)
	}
}

func TestOrderService_GetOrder_UserScoped(t *testing.T) {
	orders := seededOrderRepo("ord-1", "user_1", domain.OrderPending)
	svc := newOrderSvc(orders, newStubCartRepo(), newStubProductRepo())

	// Owner sees the order.
	if _, err := svc.GetOrder(context.Background(), ports.GetOrderInput{
		OrderNumber: "ord-1", Role: domain.RoleUser, UserID: "user_1",
	}); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	// A different shopper gets not-found, never someone else's order.
	if _, err := svc.GetOrder(context.Background(), ports.GetOrderInput{
		OrderNumber: "ord-1", Role: domain.RoleUser, UserID: "user_2",
	}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound for foreign order, got: %v", err)
	}

	// Admin scope ignores ownership.
	if _, err := svc.GetOrder(context.Background(), ports.GetOrderInput{
		OrderNumber: "ord-1", Role: domain.RoleAdmin, UserID: "admin_1",
	}); err != nil {
		t.Errorf("admin get: %v", err)
	}
}

func TestOrderService_ListOrders_AdminSeesAll(t *testing.T) {
	orders := newStubOrderRepo()
	for _, user := range []string{"user_1", "user_2"} {
		orders.byNumber["ord-"+user] = &domain.Order{
			OrderNumber: "ord-" + user,
			UserID:      user,
			Status:      domain.OrderPending,
		}
	}
	svc := newOrderSvc(orders, newStubCartRepo(), newStubProductRepo())

	mine, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{
		Role: domain.RoleUser, UserID: "user_1",
	})
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if mine.Total != 1 {
		t.Errorf("expected 1 own order, got %d", mine.Total)
	}

	all, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{
		Role: domain.RoleAdmin, UserID: "admin_1",
	})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.Total != 2 {
		t.Errorf("expected 2 orders for admin, got %d", all.Total)
	}
}
