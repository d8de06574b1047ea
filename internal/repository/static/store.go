// Package static serves the dashboard's built-in sample data from memory.
package static

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// Store is an in-memory datasource. Submissions are appended for the
// lifetime of the process and lost on restart.
type Store struct {
	mu        sync.RWMutex
	inventory []models.InventoryRecord
	inbound   []models.Transaction
	outbound  []models.Transaction
	customers []models.CustomerScore
	daily     []models.DailyMetrics
	carryOver []models.CarryOver
	logger    *zap.Logger
}

// NewStore returns a store seeded with the sample dataset.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		inventory: seedInventory(),
		inbound:   seedInbound(),
		outbound:  seedOutbound(),
		customers: seedCustomers(),
		daily:     seedDaily(),
		carryOver: seedCarryOver(),
		logger:    logger,
	}
}

// NewEmptyStore returns a store without any records.
func NewEmptyStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Inventory returns a copy of the inventory balances.
func (s *Store) Inventory(context.Context) ([]models.InventoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inventory), nil
}

// Inbound returns a copy of the inbound movements.
func (s *Store) Inbound(context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inbound), nil
}

// Outbound returns a copy of the outbound movements.
func (s *Store) Outbound(context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.outbound), nil
}

// Customers returns a copy of the credit scoring rows.
func (s *Store) Customers(context.Context) ([]models.CustomerScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.customers), nil
}

// DailyMetrics returns a copy of the daily chart rows.
func (s *Store) DailyMetrics(context.Context) ([]models.DailyMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.daily), nil
}

// CarryOver returns a copy of the carry-over series.
func (s *Store) CarryOver(context.Context) ([]models.CarryOver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.carryOver), nil
}

// RecordInbound appends an inbound movement.
func (s *Store) RecordInbound(_ context.Context, tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbound = append(s.inbound, tx)
	s.logger.Debug("inbound recorded", zap.String("material", tx.MaterialName), zap.Float64("net_mt", tx.NetQuantityMT))
	return nil
}

// RecordOutbound appends an outbound movement.
func (s *Store) RecordOutbound(_ context.Context, tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbound = append(s.outbound, tx)
	s.logger.Debug("outbound recorded", zap.String("material", tx.MaterialName), zap.Float64("net_mt", tx.NetQuantityMT))
	return nil
}

// RecordInventory appends balance lines.
func (s *Store) RecordInventory(_ context.Context, records []models.InventoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = append(s.inventory, records...)
	s.logger.Debug("inventory recorded", zap.Int("records", len(records)))
	return nil
}
