// Package repository declares where dashboard records come from and where
// submissions go. Implementations live in the subpackages.
package repository

import (
	"context"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// Source reads the raw records behind the dashboard. Implementations return
// fresh slices the caller may modify.
type Source interface {
	Inventory(ctx context.Context) ([]models.InventoryRecord, error)
	Inbound(ctx context.Context) ([]models.Transaction, error)
	Outbound(ctx context.Context) ([]models.Transaction, error)
	Customers(ctx context.Context) ([]models.CustomerScore, error)
	DailyMetrics(ctx context.Context) ([]models.DailyMetrics, error)
	CarryOver(ctx context.Context) ([]models.CarryOver, error)
}

// Recorder stores accepted data-entry submissions.
type Recorder interface {
	RecordInbound(ctx context.Context, tx models.Transaction) error
	RecordOutbound(ctx context.Context, tx models.Transaction) error
	RecordInventory(ctx context.Context, records []models.InventoryRecord) error
}

// Store is a datasource that also accepts submissions.
type Store interface {
	Source
	Recorder
}
