package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/sorting"
)

// DashboardService is the read side of the dashboard; *reporting.Service satisfies it.
type DashboardService interface {
	Overview(ctx context.Context) (models.WarehouseOverview, error)
	Daily(ctx context.Context) (models.DailyOverview, error)
	Batches(ctx context.Context, sort sorting.State) ([]models.BatchView, error)
	Materials(ctx context.Context, sort sorting.State) ([]models.MaterialShelfLifeView, error)
	Health(ctx context.Context) (models.HealthSummary, error)
	Valuation(ctx context.Context) ([]models.CurrencyValuation, error)
	Customers(ctx context.Context, sort sorting.State) ([]models.CustomerRow, error)
	CustomerSummary(ctx context.Context) (models.CustomerSummary, error)
}

// DashboardHandler serves the overview, health check and credit scoring pages.
type DashboardHandler struct {
	svc    DashboardService
	logger *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(svc DashboardService, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, logger: logger}
}

// Overview returns the overview card.
func (h *DashboardHandler) Overview(c *gin.Context) {
	respond(c, h.logger, func(ctx context.Context) (any, error) { return h.svc.Overview(ctx) })
}

// Daily returns the throughput and carry-over series.
func (h *DashboardHandler) Daily(c *gin.Context) {
	respond(c, h.logger, func(ctx context.Context) (any, error) { return h.svc.Daily(ctx) })
}

// Batches returns the batch table, optionally sorted by ?sort=&dir=.
func (h *DashboardHandler) Batches(c *gin.Context) {
	h.sorted(c, func(ctx context.Context, s sorting.State) (any, error) { return h.svc.Batches(ctx, s) })
}

// Materials returns the per-material shelf-life table.
func (h *DashboardHandler) Materials(c *gin.Context) {
	h.sorted(c, func(ctx context.Context, s sorting.State) (any, error) { return h.svc.Materials(ctx, s) })
}

// HealthSummary returns the health check cards.
func (h *DashboardHandler) HealthSummary(c *gin.Context) {
	respond(c, h.logger, func(ctx context.Context) (any, error) { return h.svc.Health(ctx) })
}

// Valuation returns stock value per currency.
func (h *DashboardHandler) Valuation(c *gin.Context) {
	respond(c, h.logger, func(ctx context.Context) (any, error) { return h.svc.Valuation(ctx) })
}

// Customers returns the credit scoring table.
func (h *DashboardHandler) Customers(c *gin.Context) {
	h.sorted(c, func(ctx context.Context, s sorting.State) (any, error) { return h.svc.Customers(ctx, s) })
}

// CustomerSummary returns the credit scoring cards.
func (h *DashboardHandler) CustomerSummary(c *gin.Context) {
	respond(c, h.logger, func(ctx context.Context) (any, error) { return h.svc.CustomerSummary(ctx) })
}

func (h *DashboardHandler) sorted(c *gin.Context, fn func(context.Context, sorting.State) (any, error)) {
	dir, err := sorting.ParseDirection(c.Query("dir"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	state := sorting.State{Field: c.Query("sort"), Direction: dir}

	respond(c, h.logger, func(ctx context.Context) (any, error) { return fn(ctx, state) })
}

func respond(c *gin.Context, logger *zap.Logger, fn func(context.Context) (any, error)) {
	body, err := fn(c.Request.Context())
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
