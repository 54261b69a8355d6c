package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// ReviewService implements star ratings. Each accepted review bumps the
// product's rating aggregate so the storefront can render averages
// without scanning the reviews collection.
type ReviewService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, products ports.ProductRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, logger: logger}
}

func (s *ReviewService) AddReview(ctx context.Context, in ports.AddReviewInput) (*domain.Review, error) {
	if in.Stars < 1 || in.Stars > 5 {
		return nil, domain.ErrInvalidStars
	}

	product, err := s.products.FindBySlug(ctx, in.ProductSlug)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviews.ExistsForUser(ctx, product.ID, in.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrReviewExists
	}

	review := &domain.Review{
		ProductID: product.ID,
		UserID:    in.UserID,
		UserName:  in.UserName,
		Stars:     in.Stars,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.products.BumpRating(ctx, product.ID, in.Stars); err != nil {
		// The review is stored; the aggregate catches up on the next one.
		s.logger.Warn().Err(err).Str("product", product.ID).Msg("failed to bump rating aggregate")
	}

	return created, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, productSlug string, page, limit int) (*ports.ListReviewsResult, error) {
	product, err := s.products.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	items, total, err := s.reviews.ListByProduct(ctx, product.ID, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListReviewsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
