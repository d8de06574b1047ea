package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/service/whatsapp"
)

// WebhookHandler exposes the WhatsApp channel: Meta's webhook callbacks and
// the manual send endpoint.
type WebhookHandler struct {
	svc    whatsapp.MessagingService
	logger *zap.Logger
}

// NewWebhookHandler wires the handler to the messaging service.
func NewWebhookHandler(svc whatsapp.MessagingService, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{svc: svc, logger: logger}
}

// Verify echoes hub.challenge back when the verify token matches.
func (h *WebhookHandler) Verify(c *gin.Context) {
	challenge, err := h.svc.VerifyWebhookToken(c.Query("hub.mode"), c.Query("hub.verify_token"), c.Query("hub.challenge"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.String(http.StatusOK, challenge)
}

// Receive handles a callback. A failed reply answers 500 so Meta redelivers.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload models.WebhookPayload
	if !bindJSON(c, h.logger, &payload) {
		return
	}
	if err := h.svc.HandleWebhook(c.Request.Context(), payload); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// SendMessage pushes a manual message; Graph API failures answer 502.
func (h *WebhookHandler) SendMessage(c *gin.Context) {
	var req models.OutboundMessageRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	if err := h.svc.SendOutbound(c.Request.Context(), req); err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			err = fmt.Errorf("%w: %w", errUpstream, err)
		}
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusAccepted)
}
