package handler

import (
	"log/slog"
	"net/http"

	"teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/response"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConversationHandlerParams holds dependencies for ConversationHandler, injected by Fx.
type ConversationHandlerParams struct {
	fx.In

	ConversationUC usecase.ConversationUsecase
	Logger         *slog.Logger
}

// ConversationHandler serves buyer/seller messaging.
type ConversationHandler struct {
	conversationUC usecase.ConversationUsecase
	logger         *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler.
func NewConversationHandler(params ConversationHandlerParams) *ConversationHandler {
	return &ConversationHandler{
		conversationUC: params.ConversationUC,
		logger:         params.Logger,
	}
}

// OpenConversationRequest is the body of POST /conversations.
type OpenConversationRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	SellerID  uuid.UUID `json:"seller_id" validate:"required"`
}

// SendMessageRequest is the body of POST /conversations/:id/messages.
// Blank content is rejected by the usecase with EMPTY_MESSAGE.
type SendMessageRequest struct {
	Content string `json:"content" validate:"max=2000"`
}

// ContactSeller handles POST /products/:id/contact
func (h *ConversationHandler) ContactSeller(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conversation, err := h.conversationUC.ContactSeller(c.Request().Context(), middleware.GetPrincipal(c), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversation)
}

// Open handles POST /conversations
func (h *ConversationHandler) Open(c echo.Context) error {
	var req OpenConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Requête invalide")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	conversation, err := h.conversationUC.OpenOrCreateConversation(
		c.Request().Context(), middleware.GetPrincipal(c), req.ProductID, req.SellerID,
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversation)
}

// List handles GET /conversations
func (h *ConversationHandler) List(c echo.Context) error {
	views, err := h.conversationUC.ListConversations(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// Get handles GET /conversations/:id
func (h *ConversationHandler) Get(c echo.Context) error {
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.conversationUC.GetConversation(c.Request().Context(), middleware.GetPrincipal(c), conversationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ListMessages handles GET /conversations/:id/messages
func (h *ConversationHandler) ListMessages(c echo.Context) error {
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.conversationUC.ListMessages(c.Request().Context(), middleware.GetPrincipal(c), conversationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// SendMessage handles POST /conversations/:id/messages
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Message invalide")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	message, err := h.conversationUC.SendMessage(c.Request().Context(), middleware.GetPrincipal(c), conversationID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}
