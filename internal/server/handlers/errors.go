package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/repository/mongodb"
	"github.com/mamadbah2/warehouse/internal/service/chat"
	"github.com/mamadbah2/warehouse/internal/service/submission"
	"github.com/mamadbah2/warehouse/internal/service/whatsapp"
	"github.com/mamadbah2/warehouse/internal/sorting"
)

// errUpstream marks failures of a third-party API the handler relays to.
var errUpstream = errors.New("upstream failure")

// statusFor maps service sentinels to HTTP statuses; anything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sorting.ErrUnknownField),
		errors.Is(err, sorting.ErrInvalidDirection),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, submission.ErrInvalidSubmission),
		errors.Is(err, submission.ErrEmptyDraft),
		errors.Is(err, whatsapp.ErrInvalidOutbound):
		return http.StatusBadRequest
	case errors.Is(err, whatsapp.ErrVerificationFailed):
		return http.StatusForbidden
	case errors.Is(err, submission.ErrDraftItemNotFound),
		errors.Is(err, mongodb.ErrNoSnapshot):
		return http.StatusNotFound
	case errors.Is(err, errUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the mapped status. Server-side details stay in the log.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	switch {
	case status == http.StatusBadGateway:
		logger.Error("upstream call failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "upstream unavailable"})
	case status >= http.StatusInternalServerError:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
	default:
		logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// bindJSON decodes the request body into dst, answering 400 when it cannot.
func bindJSON(c *gin.Context, logger *zap.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Debug("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
