package ports

import (
	"context"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	ExistsForUser(ctx context.Context, productID, userID string) (bool, error)
	// ListByProduct returns a page of reviews, newest first, and the total count.
	ListByProduct(ctx context.Context, productID string, page, limit int) ([]*domain.Review, int64, error)
}

// AddReviewInput carries one star rating submission.
type AddReviewInput struct {
	ProductSlug string
	UserID      string
	UserName    string
	Stars       int
	Comment     string
}

// ListReviewsResult is returned by ListReviews.
type ListReviewsResult struct {
	Items      []*domain.Review
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ReviewService defines star rating use cases.
type ReviewService interface {
	AddReview(ctx context.Context, in AddReviewInput) (*domain.Review, error)
	ListReviews(ctx context.Context, productSlug string, page, limit int) (*ListReviewsResult, error)
}
