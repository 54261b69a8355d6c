package ports

import (
	"context"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// CartRepository defines persistence operations for carts. All writes
// upsert the single cart document owned by the user.
type CartRepository interface {
	FindByUser(ctx context.Context, userID string) (*domain.Cart, error)
	UpsertItem(ctx context.Context, userID string, item domain.CartItem) error
	SetItemQuantity(ctx context.Context, userID, productID string, quantity int64) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

// WishlistRepository defines persistence operations for wishlists.
type WishlistRepository interface {
	FindByUser(ctx context.Context, userID string) (*domain.Wishlist, error)
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
}

// CartLine is a cart item joined with its current catalog data.
type CartLine struct {
	Product    *domain.Product
	Quantity   int64
	TotalCents int64
}

// CartView is the resolved cart returned to the storefront.
type CartView struct {
	Lines      []CartLine
	TotalCents int64
	Currency   string
}

// CartService defines cart and wishlist use cases.
type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int64) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int64) error
	RemoveItem(ctx context.Context, userID, productID string) error
	GetCart(ctx context.Context, userID string) (*CartView, error)

	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
	GetWishlist(ctx context.Context, userID string) ([]*domain.Product, error)
}
