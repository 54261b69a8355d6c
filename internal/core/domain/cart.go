package domain

import "time"

// CartItem is a single product line in a shopper's cart.
type CartItem struct {
	ProductID string    `json:"product_id" bson:"product_id"`
	Quantity  int64     `json:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"added_at" bson:"added_at"`
}

// Cart holds the open cart for one user. One cart document per user.
type Cart struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	UserID    string     `json:"user_id" bson:"user_id"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// Wishlist is the set of product ids a user has saved for later.
type Wishlist struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id"`
	ProductIDs []string  `json:"product_ids" bson:"product_ids"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
