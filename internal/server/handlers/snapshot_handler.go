package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// SnapshotReader reads the archive; *mongodb.MongoDBRepository satisfies it.
type SnapshotReader interface {
	LatestSnapshot(ctx context.Context) (models.DashboardSnapshot, error)
}

// SnapshotHandler exposes archived dashboard snapshots.
type SnapshotHandler struct {
	repo   SnapshotReader
	logger *zap.Logger
}

// NewSnapshotHandler constructs the HTTP handler adapter.
func NewSnapshotHandler(repo SnapshotReader, logger *zap.Logger) *SnapshotHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotHandler{repo: repo, logger: logger}
}

// Latest returns the most recent snapshot.
func (h *SnapshotHandler) Latest(c *gin.Context) {
	respond(c, h.logger, func(ctx context.Context) (any, error) { return h.repo.LatestSnapshot(ctx) })
}
