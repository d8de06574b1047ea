// Package reporting assembles dashboard views from the configured datasource.
package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/aggregate"
	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/repository"
	"github.com/mamadbah2/warehouse/internal/sorting"
)

// Service recomputes every view from the source on each call.
type Service struct {
	source    repository.Source
	estimator aggregate.ShelfLifeEstimator
	settings  aggregate.OverviewSettings
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(source repository.Source, estimator aggregate.ShelfLifeEstimator, settings aggregate.OverviewSettings, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:    source,
		estimator: estimator,
		settings:  settings,
		logger:    logger,
		now:       time.Now,
	}
}

// SetClock replaces the clock used as "today" by the shelf-life estimator.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Overview returns the warehouse overview card.
func (s *Service) Overview(ctx context.Context) (models.WarehouseOverview, error) {
	inbound, err := s.source.Inbound(ctx)
	if err != nil {
		return models.WarehouseOverview{}, fmt.Errorf("load inbound: %w", err)
	}
	outbound, err := s.source.Outbound(ctx)
	if err != nil {
		return models.WarehouseOverview{}, fmt.Errorf("load outbound: %w", err)
	}
	return aggregate.SummarizeOverview(inbound, outbound, s.settings), nil
}

// Daily returns the throughput chart series and the carry-over series.
func (s *Service) Daily(ctx context.Context) (models.DailyOverview, error) {
	days, err := s.source.DailyMetrics(ctx)
	if err != nil {
		return models.DailyOverview{}, fmt.Errorf("load daily metrics: %w", err)
	}
	inbound, err := s.source.Inbound(ctx)
	if err != nil {
		return models.DailyOverview{}, fmt.Errorf("load inbound: %w", err)
	}
	outbound, err := s.source.Outbound(ctx)
	if err != nil {
		return models.DailyOverview{}, fmt.Errorf("load outbound: %w", err)
	}
	carry, err := s.source.CarryOver(ctx)
	if err != nil {
		return models.DailyOverview{}, fmt.Errorf("load carry over: %w", err)
	}

	return models.DailyOverview{
		Series:    aggregate.DailySeries(days, inbound, outbound),
		CarryOver: carry,
	}, nil
}

// Batches returns one row per inventory record. An empty sort field keeps input order.
func (s *Service) Batches(ctx context.Context, sort sorting.State) ([]models.BatchView, error) {
	records, err := s.source.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	views := aggregate.ToBatchViews(records, s.estimator, s.now())
	return applySort(views, BatchFields, sort)
}

// Materials returns one row per material. An empty sort field keeps first-seen order.
func (s *Service) Materials(ctx context.Context, sort sorting.State) ([]models.MaterialShelfLifeView, error) {
	records, err := s.source.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	views := aggregate.ToMaterialShelfLife(records, s.estimator, s.now())
	return applySort(views, MaterialFields, sort)
}

// Health returns the health check summary cards.
func (s *Service) Health(ctx context.Context) (models.HealthSummary, error) {
	batches, err := s.Batches(ctx, sorting.State{})
	if err != nil {
		return models.HealthSummary{}, err
	}
	return aggregate.SummarizeHealth(batches), nil
}

// Valuation returns stock value totals per currency.
func (s *Service) Valuation(ctx context.Context) ([]models.CurrencyValuation, error) {
	records, err := s.source.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return aggregate.StockValueByCurrency(records), nil
}

// Customers returns the credit scoring table with trend indicators.
func (s *Service) Customers(ctx context.Context, sort sorting.State) ([]models.CustomerRow, error) {
	customers, err := s.source.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	sorted, err := applySort(customers, CustomerFields, sort)
	if err != nil {
		return nil, err
	}
	return aggregate.ToCustomerRows(sorted), nil
}

// CustomerSummary returns the credit scoring cards.
func (s *Service) CustomerSummary(ctx context.Context) (models.CustomerSummary, error) {
	customers, err := s.source.Customers(ctx)
	if err != nil {
		return models.CustomerSummary{}, fmt.Errorf("load customers: %w", err)
	}
	return aggregate.SummarizeCustomers(customers), nil
}

// Snapshot captures every summary card at the current time.
func (s *Service) Snapshot(ctx context.Context) (models.DashboardSnapshot, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return models.DashboardSnapshot{}, err
	}
	health, err := s.Health(ctx)
	if err != nil {
		return models.DashboardSnapshot{}, err
	}
	customers, err := s.CustomerSummary(ctx)
	if err != nil {
		return models.DashboardSnapshot{}, err
	}

	return models.DashboardSnapshot{
		TakenAt:   s.now().UTC(),
		Overview:  overview,
		Health:    health,
		Customers: customers,
	}, nil
}

func applySort[T any](items []T, fields sorting.Fields[T], sort sorting.State) ([]T, error) {
	if sort.Field == "" {
		return items, nil
	}
	return sorting.SortBy(items, fields, sort.Field, sort.Direction)
}
