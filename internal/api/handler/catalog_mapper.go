package handler

import (
	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		Images:      p.Images,
		Stock:       p.Stock,
		Rating: ratingResponse{
			Average: p.Rating.Average(),
			Count:   p.Rating.Count,
		},
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func toListProductsResponse(r *ports.ListProductsResult) listProductsResponse {
	items := make([]productResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toProductResponse(p)
	}
	return listProductsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
