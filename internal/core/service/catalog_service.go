package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CatalogService implements storefront browsing and back-office catalog
// management.
type CatalogService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	logger     zerolog.Logger
}

func NewCatalogService(categories ports.CategoryRepository, products ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{categories: categories, products: products, logger: logger}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	filter := ports.ListProductsFilter{
		Search: in.Search,
		Page:   page,
		Limit:  limit,
	}

	if in.CategorySlug != "" {
		category, err := s.findCategoryBySlug(ctx, in.CategorySlug)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = category.ID
	}

	items, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	return s.products.FindBySlug(ctx, slug)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		Name:      in.Name,
		Slug:      slugify(in.Name),
		ImageURL:  in.ImageURL,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("category", created.Slug).Msg("category created")
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id, name, imageURL string) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		category.Name = name
		category.Slug = slugify(name)
	}
	if imageURL != "" {
		category.ImageURL = imageURL
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to delete a category that still has products so
// the storefront never shows orphaned items.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryNotEmpty
	}

	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Slug:        slugify(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		Images:      in.Images,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product", created.Slug).Str("category", in.CategoryID).Msg("product created")
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
		product.Slug = slugify(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.PriceCents != nil {
		product.PriceCents = *in.PriceCents
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *CatalogService) findCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// normalizePage clamps pagination input to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// slugify lowercases a name and replaces runs of non-alphanumerics with
// a single hyphen.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
