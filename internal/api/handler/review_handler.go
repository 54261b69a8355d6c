package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/api/metrics"
	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

type ReviewHandler struct {
	reviewService ports.ReviewService
}

func NewReviewHandler(reviewService ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type addReviewRequest struct {
	Stars   int    `json:"stars"   validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type listReviewsResponse struct {
	Data       []*domain.Review   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// ListReviews returns a page of reviews for a product, newest first.
//
// @Summary      List product reviews
// @Tags         reviews
// @Produce      json
// @Param        slug   path      string  true   "Product slug"
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  listReviewsResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/catalog/products/{slug}/reviews [get]
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	result, err := h.reviewService.ListReviews(
		c.Request().Context(),
		c.Param("slug"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 0),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listReviewsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// AddReview submits one star rating for a product. Each user may review
// a product once.
//
// @Summary      Add product review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        slug  path      string            true  "Product slug"
// @Param        body  body      addReviewRequest  true  "Review"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/catalog/products/{slug}/reviews [post]
func (h *ReviewHandler) AddReview(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.reviewService.AddReview(c.Request().Context(), ports.AddReviewInput{
		ProductSlug: c.Param("slug"),
		UserID:      user.ID,
		UserName:    user.Name,
		Stars:       req.Stars,
		Comment:     req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(review.Stars)).Inc()
	return c.JSON(http.StatusCreated, review)
}
