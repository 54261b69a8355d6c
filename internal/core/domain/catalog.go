package domain

import (
	"errors"
	"time"
)

var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryNotEmpty = errors.New("category still has products")
var ErrProductNotFound = errors.New("product not found")
var ErrSlugExists = errors.New("slug already exists")

// Category is a storefront grouping shown on the category grid.
type Category struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Slug      string    `json:"slug" bson:"slug"`
	ImageURL  string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Rating aggregates review stars on a product. Average is derived, never
// stored, so concurrent $inc updates stay consistent.
type Rating struct {
	Count int64 `json:"count" bson:"count"`
	Sum   int64 `json:"sum" bson:"sum"`
}

// Average returns the mean star value, 0 when unrated.
func (r Rating) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return float64(r.Sum) / float64(r.Count)
}

// Product is the core catalog aggregate.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CategoryID  string    `json:"category_id" bson:"category_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	PriceCents  int64     `json:"price_cents" bson:"price_cents"`
	Currency    string    `json:"currency" bson:"currency"`
	Images      []string  `json:"images,omitempty" bson:"images,omitempty"`
	Stock       int64     `json:"stock" bson:"stock"`
	Rating      Rating    `json:"rating" bson:"rating"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
