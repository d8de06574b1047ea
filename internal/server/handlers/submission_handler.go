package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// UserIDHeader identifies whose inventory draft a request works on.
const UserIDHeader = "X-User-ID"

const anonymousUser = "anonymous"

// SubmissionService accepts data entry; *submission.Service satisfies it.
type SubmissionService interface {
	SubmitInbound(ctx context.Context, in models.InboundSubmission) (models.SubmissionReceipt, error)
	SubmitOutbound(ctx context.Context, in models.OutboundSubmission) (models.SubmissionReceipt, error)
	AddDraftItem(userID string, req models.InventoryDraftItemRequest) (models.InventoryDraftItem, error)
	RemoveDraftItem(userID, itemID string) error
	DiscardDraft(userID string)
	Draft(userID string) []models.InventoryDraftItem
	SubmitInventory(ctx context.Context, userID string, in models.InventorySubmission) (models.SubmissionReceipt, error)
}

// SubmissionHandler serves the data submission page.
type SubmissionHandler struct {
	svc    SubmissionService
	logger *zap.Logger
}

// NewSubmissionHandler constructs the HTTP handler adapter.
func NewSubmissionHandler(svc SubmissionService, logger *zap.Logger) *SubmissionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionHandler{svc: svc, logger: logger}
}

// Inbound accepts the inbound form.
func (h *SubmissionHandler) Inbound(c *gin.Context) {
	var in models.InboundSubmission
	if !bindJSON(c, h.logger, &in) {
		return
	}
	h.receipt(c, func(ctx context.Context) (models.SubmissionReceipt, error) { return h.svc.SubmitInbound(ctx, in) })
}

// Outbound accepts the outbound form.
func (h *SubmissionHandler) Outbound(c *gin.Context) {
	var in models.OutboundSubmission
	if !bindJSON(c, h.logger, &in) {
		return
	}
	h.receipt(c, func(ctx context.Context) (models.SubmissionReceipt, error) { return h.svc.SubmitOutbound(ctx, in) })
}

// Draft lists the caller's inventory draft.
func (h *SubmissionHandler) Draft(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Draft(userID(c)))
}

// AddDraftItem appends a row to the caller's inventory draft.
func (h *SubmissionHandler) AddDraftItem(c *gin.Context) {
	var req models.InventoryDraftItemRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	item, err := h.svc.AddDraftItem(userID(c), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// RemoveDraftItem deletes a row from the caller's inventory draft.
func (h *SubmissionHandler) RemoveDraftItem(c *gin.Context) {
	if err := h.svc.RemoveDraftItem(userID(c), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DiscardDraft empties the caller's inventory draft.
func (h *SubmissionHandler) DiscardDraft(c *gin.Context) {
	h.svc.DiscardDraft(userID(c))
	c.Status(http.StatusNoContent)
}

// Inventory submits the caller's draft.
func (h *SubmissionHandler) Inventory(c *gin.Context) {
	var in models.InventorySubmission
	if !bindJSON(c, h.logger, &in) {
		return
	}
	user := userID(c)
	h.receipt(c, func(ctx context.Context) (models.SubmissionReceipt, error) {
		return h.svc.SubmitInventory(ctx, user, in)
	})
}

func (h *SubmissionHandler) receipt(c *gin.Context, fn func(context.Context) (models.SubmissionReceipt, error)) {
	r, err := fn(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func userID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
		return id
	}
	return anonymousUser
}
