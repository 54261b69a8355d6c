package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/core/ports"
)

type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type sendMessageRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body"    validate:"required,max=5000"`
}

type replyMessageRequest struct {
	Reply string `json:"reply" validate:"required,max=5000"`
}

// Send submits a customer message to the store.
//
// @Summary      Send message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	msg, err := h.messageService.Send(c.Request().Context(), ports.SendMessageInput{
		UserID:   user.ID,
		UserName: user.Name,
		Subject:  req.Subject,
		Body:     req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// ListMine returns the user's own messages, including replies.
//
// @Summary      List own messages
// @Tags         messages
// @Produce      json
// @Success      200  {array}   domain.Message
// @Failure      401  {object}  errorResponse
// @Router       /v1/messages [get]
func (h *MessageHandler) ListMine(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	messages, err := h.messageService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// ListAll returns every customer message (admin).
//
// @Summary      List all messages
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Message
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/messages [get]
func (h *MessageHandler) ListAll(c echo.Context) error {
	messages, err := h.messageService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Reply attaches a back-office reply to a customer message (admin).
//
// @Summary      Reply to message
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Message ID"
// @Param        body  body      replyMessageRequest  true  "Reply"
// @Success      204   "replied"
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/messages/{id}/reply [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	var req replyMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.messageService.Reply(c.Request().Context(), c.Param("id"), req.Reply); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
