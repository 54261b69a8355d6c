package ports

import (
	"context"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// CreateCategoryInput carries admin input for a new category.
type CreateCategoryInput struct {
	Name     string
	ImageURL string
}

// CreateProductInput carries admin input for a new product.
type CreateProductInput struct {
	CategoryID  string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	Images      []string
	Stock       int64
}

// UpdateProductInput carries admin edits. Nil pointers mean "unchanged".
type UpdateProductInput struct {
	Name        *string
	Description *string
	PriceCents  *int64
	Images      []string
	Stock       *int64
	CategoryID  *string
}

// ListProductsInput carries all parameters for the public product list.
type ListProductsInput struct {
	CategorySlug string
	Search       string
	Page         int
	Limit        int
}

// ListProductsResult is returned by ListProducts.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CatalogService defines storefront browsing and back-office catalog
// management use cases.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	ListProducts(ctx context.Context, in ListProductsInput) (*ListProductsResult, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)

	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id, name, imageURL string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
