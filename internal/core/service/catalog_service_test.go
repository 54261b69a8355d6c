package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCategoryRepo struct {
	byID   map[string]*domain.Category
	nextID int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	for _, existing := range r.byID {
		if existing.Slug == c.Slug {
			return nil, domain.ErrSlugExists
		}
	}
	r.nextID++
	cp := *c
	cp.ID = "cat_" + strconv.Itoa(r.nextID)
	r.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newCatalogSvc(categories *stubCategoryRepo, products *stubProductRepo) *CatalogService {
	return NewCatalogService(categories, products, zerolog.Nop())
}

func seedCategory(repo *stubCategoryRepo, name string) *domain.Category {
	c, err := repo.Create(context.Background(), &domain.Category{
		Name:      name,
		Slug:      slugify(name),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		panic(err)
	}
	return c
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Garden Tools":        "garden-tools",
		"  Fancy --- Stuff  ": "fancy-stuff",
		"Électronique 2000":   "électronique-2000",
		"---":                 "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultPageLimit},
		{-3, -1, 1, defaultPageLimit},
		{2, 50, 2, 50},
		{1, 1000, 1, maxPageLimit},
	}
	for _, c := range cases {
		page, limit := normalizePage(c.page, c.limit)
		if page != c.wantPage || limit != c.wantLimit {
			t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				c.page, c.limit, page, limit, c.wantPage, c.wantLimit)
		}
	}
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	svc := newCatalogSvc(newStubCategoryRepo(), newStubProductRepo())

	_, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		CategoryID: "ghost",
		Name:       "Widget",
		PriceCents: 1000,
		Currency:   "MXN",
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got: %v", err)
	}
}

func TestCatalogService_CreateProduct_Slugged(t *testing.T) {
	categories := newStubCategoryRepo()
	cat := seedCategory(categories, "Garden Tools")
	svc := newCatalogSvc(categories, newStubProductRepo())

	product, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		CategoryID:  cat.ID,
		Name:        "Steel Rake 5000",
		Description: "A rake",
		PriceCents:  1500,
		Currency:    "MXN",
		Stock:       10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Slug != "steel-rake-5000" {
		t.Errorf("expected slug steel-rake-5000, got %q", product.Slug)
	}
}

func TestCatalogService_UpdateProduct_PartialEdit(t *testing.T) {
	categories := newStubCategoryRepo()
	cat := seedCategory(categories, "Garden Tools")
	products := newStubProductRepo()
	svc := newCatalogSvc(categories, products)

	created, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		CategoryID:  cat.ID,
		Name:        "Steel Rake",
		Description: "A rake",
		PriceCents:  1500,
		Currency:    "MXN",
		Stock:       10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPrice := int64(1800)
	updated, err := svc.UpdateProduct(context.Background(), created.ID, ports.UpdateProductInput{
		PriceCents: &newPrice,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PriceCents != 1800 {
		t.Errorf("expected price 1800, got %d", updated.PriceCents)
	}
	// Untouched fields survive a partial edit.
	if updated.Name != "Steel Rake" || updated.Stock != 10 {
		t.Errorf("unexpected side effects: %+v", updated)
	}
}

func TestCatalogService_DeleteCategory_RefusesNonEmpty(t *testing.T) {
	categories := newStubCategoryRepo()
	cat := seedCategory(categories, "Garden Tools")
	products := newStubProductRepo()
	p := seedProduct(products, "p1", 1000, 5)
	p.CategoryID = cat.ID
	svc := newCatalogSvc(categories, products)

	if err := svc.DeleteCategory(context.Background(), cat.ID); !errors.Is(err, domain.ErrCategoryNotEmpty) {
		t.Errorf("expected ErrCategoryNotEmpty, got: %v", err)
	}

	if err := products.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), cat.ID); err != nil {
		t.Errorf("expected empty category deletable, got: %v", err)
	}
}

func TestCatalogService_ListProducts_ByCategorySlug(t *testing.T) {
	categories := newStubCategoryRepo()
	cat := seedCategory(categories, "Garden Tools")
	other := seedCategory(categories, "Kitchen")
	products := newStubProductRepo()
	seedProduct(products, "p1", 1000, 5).CategoryID = cat.ID
	seedProduct(products, "p2", 2000, 5).CategoryID = other.ID
	svc := newCatalogSvc(categories, products)

	result, err := svc.ListProducts(context.Background(), ports.ListProductsInput{
		CategorySlug: "garden-tools",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("expected 1 product in category, got %d", result.Total)
	}
	if result.Page != 1 || result.Limit != defaultPageLimit {
		t.Errorf("unexpected pagination: page=%d limit=%d", result.Page, result.Limit)
	}
}

func TestCatalogService_ListProducts_UnknownCategorySlug(t *testing.T) {
	svc := newCatalogSvc(newStubCategoryRepo(), newStubProductRepo())

	_, err := svc.ListProducts(context.Background(), ports.ListProductsInput{CategorySlug: "ghost"})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got: %v", err)
	}
}
