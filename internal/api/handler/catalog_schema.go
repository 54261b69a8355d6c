package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Admin request types ---

type createCategoryRequest struct {
	Name     string `json:"name"      validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type updateCategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type createProductRequest struct {
	CategoryID  string   `json:"category_id" validate:"required"`
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	PriceCents  int64    `json:"price_cents" validate:"required,gt=0"`
	Currency    string   `json:"currency"    validate:"required,len=3"`
	Images      []string `json:"images"`
	Stock       int64    `json:"stock"       validate:"gte=0"`
}

type updateProductRequest struct {
	CategoryID  *string  `json:"category_id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	PriceCents  *int64   `json:"price_cents" validate:"omitempty,gt=0"`
	Images      []string `json:"images"`
	Stock       *int64   `json:"stock"       validate:"omitempty,gte=0"`
}

// --- Response types owned by the transport layer ---

type categoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url,omitempty"`
}

type ratingResponse struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type productResponse struct {
	ID          string         `json:"id"`
	CategoryID  string         `json:"category_id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	PriceCents  int64          `json:"price_cents"`
	Currency    string         `json:"currency"`
	Images      []string       `json:"images,omitempty"`
	Stock       int64          `json:"stock"`
	Rating      ratingResponse `json:"rating"`
	CreatedAt   time.Time      `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listProductsResponse struct {
	Data       []productResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
