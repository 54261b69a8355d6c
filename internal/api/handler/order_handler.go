package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/api/metrics"
	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// EventDispatcher accepts order status events for asynchronous processing.
// Implemented by queue.Dispatcher.
type EventDispatcher interface {
	Enqueue(event ports.OrderEventInput)
	EnqueueBatch(events []ports.OrderEventInput)
}

type OrderHandler struct {
	orderService ports.OrderService
	dispatcher   EventDispatcher
}

func NewOrderHandler(orderService ports.OrderService, dispatcher EventDispatcher) *OrderHandler {
	return &OrderHandler{orderService: orderService, dispatcher: dispatcher}
}

type orderEventRequest struct {
	OrderNumber string    `json:"order_number" validate:"required"`
	Status      string    `json:"status"       validate:"required,oneof=paid shipped delivered cancelled"`
	Timestamp   time.Time `json:"timestamp"    validate:"required"`
	Source      string    `json:"source"       validate:"required"`
	Notes       string    `json:"notes"`
}

type orderEventBatchRequest struct {
	Events []orderEventRequest `json:"events" validate:"required,min=1,max=500,dive"`
}

type acceptedResponse struct {
	Accepted int `json:"accepted"`
}

type listOrdersResponse struct {
	Data       []*domain.Order    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toEventInput(r orderEventRequest) ports.OrderEventInput {
	return ports.OrderEventInput{
		OrderNumber: r.OrderNumber,
		Status:      r.Status,
		Timestamp:   r.Timestamp,
		Source:      r.Source,
		Notes:       r.Notes,
	}
}

// Checkout converts the user's cart into a new pending order.
//
// @Summary      Checkout
// @Tags         orders
// @Produce      json
// @Success      201  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.Checkout(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// GetOrder returns one of the user's orders by order number.
//
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        orderNumber  path      string  true  "Order number"
// @Success      200          {object}  domain.Order
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /v1/orders/{orderNumber} [get]
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), ports.GetOrderInput{
		OrderNumber: c.Param("orderNumber"),
		Role:        user.Role,
		UserID:      user.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// ListOrders returns a page of the user's own orders, newest first.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  listOrdersResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return h.listOrders(c, user.Role, user.ID)
}

// ListAllOrders returns a page of all orders across users (admin).
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  listOrdersResponse
// @Failure      403     {object}  errorResponse
// @Router       /v1/admin/orders [get]
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return h.listOrders(c, user.Role, user.ID)
}

func (h *OrderHandler) listOrders(c echo.Context, role, userID string) error {
	result, err := h.orderService.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Role:   role,
		UserID: userID,
		Status: c.QueryParam("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// IngestEvent accepts one order status event for asynchronous processing
// (admin). Validation beyond the payload shape happens in the worker.
//
// @Summary      Ingest order event
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      orderEventRequest  true  "Event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/orders/events [post]
func (h *OrderHandler) IngestEvent(c echo.Context) error {
	var req orderEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Accepted: 1})
}

// IngestEventBatch accepts a batch of order status events (admin).
// Per-order ordering within the batch is preserved by the dispatcher.
//
// @Summary      Ingest order event batch
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      orderEventBatchRequest  true  "Events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/orders/events/batch [post]
func (h *OrderHandler) IngestEventBatch(c echo.Context) error {
	var req orderEventBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	events := make([]ports.OrderEventInput, len(req.Events))
	for i, e := range req.Events {
		events[i] = toEventInput(e)
	}
	h.dispatcher.EnqueueBatch(events)
	return c.JSON(http.StatusAccepted, acceptedResponse{Accepted: len(events)})
}
