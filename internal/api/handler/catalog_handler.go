package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/core/ports"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// ListCategories returns every category for the storefront navigation.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   categoryResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = toCategoryResponse(cat)
	}
	return c.JSON(http.StatusOK, out)
}

// ListProducts returns a page of products, optionally filtered by
// category slug and a search term.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Category slug"
// @Param        search    query     string  false  "Search term"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  listProductsResponse
// @Failure      404       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /v1/catalog/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	result, err := h.catalogService.ListProducts(c.Request().Context(), ports.ListProductsInput{
		CategorySlug: c.QueryParam("category"),
		Search:       c.QueryParam("search"),
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListProductsResponse(result))
}

// GetProduct returns one product by slug.
//
// @Summary      Get product
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/catalog/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogService.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// CreateCategory creates a category (admin).
//
// @Summary      Create category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.catalogService.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// UpdateCategory renames a category or swaps its image (admin).
//
// @Summary      Update category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Category ID"
// @Param        body  body      updateCategoryRequest  true  "Fields to update"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.catalogService.UpdateCategory(c.Request().Context(), c.Param("id"), req.Name, req.ImageURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory removes an empty category (admin).
//
// @Summary      Delete category
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Category ID"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogService.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateProduct creates a product (admin).
//
// @Summary      Create product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.catalogService.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		Images:      req.Images,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// UpdateProduct edits a product (admin). Omitted fields stay unchanged.
//
// @Summary      Update product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.catalogService.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Images:      req.Images,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// DeleteProduct removes a product (admin).
//
// @Summary      Delete product
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogService.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
