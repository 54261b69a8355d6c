package service

import (
	"context"
	"errors"
	"time"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")
var ErrOutOfStock = errors.New("product is out of stock")

// CartService implements cart and wishlist use cases. Adding the same
// product twice merges into a single line.
type CartService struct {
	carts     ports.CartRepository
	wishlists ports.WishlistRepository
	products  ports.ProductRepository
}

func NewCartService(carts ports.CartRepository, wishlists ports.WishlistRepository, products ports.ProductRepository) *CartService {
	return &CartService{carts: carts, wishlists: wishlists, products: products}
}

func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.Stock <= 0 {
		return ErrOutOfStock
	}

	return s.carts.UpsertItem(ctx, userID, domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	})
}

// SetQuantity sets the absolute quantity of a line. Zero removes it.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.carts.RemoveItem(ctx, userID, productID)
	}
	return s.carts.SetItemQuantity(ctx, userID, productID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) error {
	return s.carts.RemoveItem(ctx, userID, productID)
}

// GetCart resolves cart lines against the current catalog. Lines whose
// product has been removed from the catalog are skipped, not errors.
func (s *CartService) GetCart(ctx context.Context, userID string) (*ports.CartView, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &ports.CartView{}
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		line := ports.CartLine{
			Product:    product,
			Quantity:   item.Quantity,
			TotalCents: product.PriceCents * item.Quantity,
		}
		view.Lines = append(view.Lines, line)
		view.TotalCents += line.TotalCents
		if view.Currency == "" {
			view.Currency = product.Currency
		}
	}
	return view, nil
}

func (s *CartService) AddToWishlist(ctx context.Context, userID, productID string) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.wishlists.Add(ctx, userID, productID)
}

func (s *CartService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return s.wishlists.Remove(ctx, userID, productID)
}

func (s *CartService) GetWishlist(ctx context.Context, userID string) ([]*domain.Product, error) {
	wishlist, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(wishlist.ProductIDs))
	for _, id := range wishlist.ProductIDs {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
