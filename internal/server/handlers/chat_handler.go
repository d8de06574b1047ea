package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// ChatService is the chat relay; *chat.Service satisfies it.
type ChatService interface {
	Greeting() models.ChatMessage
	Send(ctx context.Context, userID, message string) (models.ChatMessage, error)
}

// ChatHandler serves the chat widget.
type ChatHandler struct {
	svc    ChatService
	logger *zap.Logger
}

// NewChatHandler constructs the HTTP handler adapter.
func NewChatHandler(svc ChatService, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

// Greeting returns the opening bot message.
func (h *ChatHandler) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Greeting())
}

// Send relays a user message and returns the bot reply.
func (h *ChatHandler) Send(c *gin.Context) {
	var req models.ChatRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	reply, err := h.svc.Send(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
