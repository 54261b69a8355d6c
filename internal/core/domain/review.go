package domain

import (
	"errors"
	"time"
)

var ErrInvalidStars = errors.New("stars must be between 1 and 5")
var ErrReviewExists = errors.New("user already reviewed this product")

// Review is one star rating with an optional comment. A user may review
// a product at most once.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ProductID string    `json:"product_id" bson:"product_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Stars     int       `json:"stars" bson:"stars"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
