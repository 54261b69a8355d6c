package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/api/metrics"
	"github.com/webeco/storefront-system/internal/core/ports"
)

type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity"   validate:"required,gt=0"`
}

type setCartQuantityRequest struct {
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

type wishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type cartLineResponse struct {
	Product    productResponse `json:"product"`
	Quantity   int64           `json:"quantity"`
	TotalCents int64           `json:"total_cents"`
}

type cartResponse struct {
	Lines      []cartLineResponse `json:"lines"`
	TotalCents int64              `json:"total_cents"`
	Currency   string             `json:"currency,omitempty"`
}

func toCartResponse(view *ports.CartView) cartResponse {
	lines := make([]cartLineResponse, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = cartLineResponse{
			Product:    toProductResponse(l.Product),
			Quantity:   l.Quantity,
			TotalCents: l.TotalCents,
		}
	}
	return cartResponse{Lines: lines, TotalCents: view.TotalCents, Currency: view.Currency}
}

// GetCart returns the authenticated user's cart with current catalog data.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) GetCart(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	view, err := h.cartService.GetCart(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem adds a product to the cart, merging quantities on repeat adds.
//
// @Summary      Add cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Item"
// @Success      204   "added"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.cartService.AddItem(c.Request().Context(), user.ID, req.ProductID, req.Quantity); err != nil {
		return err
	}
	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.NoContent(http.StatusNoContent)
}

// SetQuantity sets the quantity of one cart line; zero removes it.
//
// @Summary      Set cart item quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productId  path      string                  true  "Product ID"
// @Param        body       body      setCartQuantityRequest  true  "Quantity"
// @Success      204        "updated"
// @Failure      400        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /v1/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req setCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.cartService.SetQuantity(c.Request().Context(), user.ID, c.Param("productId"), req.Quantity); err != nil {
		return err
	}
	metrics.CartOperationsTotal.WithLabelValues("set").Inc()
	return c.NoContent(http.StatusNoContent)
}

// RemoveItem removes one product from the cart.
//
// @Summary      Remove cart item
// @Tags         cart
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      204  "removed"
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveItem(c.Request().Context(), user.ID, c.Param("productId")); err != nil {
		return err
	}
	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// GetWishlist returns the user's wishlist products.
//
// @Summary      Get wishlist
// @Tags         wishlist
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/wishlist [get]
func (h *CartHandler) GetWishlist(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	products, err := h.cartService.GetWishlist(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

// AddToWishlist adds a product to the user's wishlist.
//
// @Summary      Add to wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        body  body      wishlistRequest  true  "Product"
// @Success      204   "added"
// @Failure      404   {object}  errorResponse
// @Router       /v1/wishlist [post]
func (h *CartHandler) AddToWishlist(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.cartService.AddToWishlist(c.Request().Context(), user.ID, req.ProductID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveFromWishlist removes a product from the user's wishlist.
//
// @Summary      Remove from wishlist
// @Tags         wishlist
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      204  "removed"
// @Failure      401  {object}  errorResponse
// @Router       /v1/wishlist/{productId} [delete]
func (h *CartHandler) RemoveFromWishlist(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveFromWishlist(c.Request().Context(), user.ID, c.Param("productId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
