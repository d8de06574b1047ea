// Package submission validates data-entry forms and hands accepted records to
// the datasource.
package submission

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/repository"
	"github.com/mamadbah2/warehouse/internal/session"
)

var (
	// ErrInvalidSubmission wraps every validation failure.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrEmptyDraft is returned when an inventory submission has no rows.
	ErrEmptyDraft = errors.New("inventory draft is empty")
	// ErrDraftItemNotFound is returned when removing an unknown draft row.
	ErrDraftItemNotFound = errors.New("draft item not found")
)

const (
	materialPrefix    = "MAT-"
	customerPrefix    = "CST-"
	dateLayout        = "2006-01-02"
	monthLayout       = "2006-01"
	balanceDateLayout = "01-02-2006"
	defaultStockUnit  = "KG"
	defaultCurrency   = "SGD"
)

var currencies = []string{"SGD", "CNY"}

// Service accepts submissions and keeps one inventory draft per user.
type Service struct {
	recorder repository.Recorder
	drafts   *session.Store[[]models.InventoryDraftItem]
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a submission service.
func NewService(recorder repository.Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		recorder: recorder,
		drafts:   session.NewStore[[]models.InventoryDraftItem](nil),
		logger:   logger,
		now:      time.Now,
	}
}

// SubmitInbound validates and records an inbound movement.
func (s *Service) SubmitInbound(ctx context.Context, in models.InboundSubmission) (models.SubmissionReceipt, error) {
	if err := validateMovement(in.Date, in.PlantName, in.MaterialNumber, in.NetQuantityMT); err != nil {
		return models.SubmissionReceipt{}, err
	}

	tx := models.Transaction{
		Direction:     models.DirectionInbound,
		Date:          strings.TrimSpace(in.Date),
		PlantName:     strings.TrimSpace(in.PlantName),
		MaterialName:  withPrefix(materialPrefix, in.MaterialNumber),
		NetQuantityMT: in.NetQuantityMT,
	}
	if err := s.recorder.RecordInbound(ctx, tx); err != nil {
		return models.SubmissionReceipt{}, fmt.Errorf("record inbound: %w", err)
	}

	s.logger.Info("inbound submitted",
		zap.String("plant", tx.PlantName),
		zap.String("material", tx.MaterialName),
		zap.Float64("net_quantity_mt", tx.NetQuantityMT),
	)
	return s.receipt(models.SubmissionInbound, 1), nil
}

// SubmitOutbound validates and records an outbound movement.
func (s *Service) SubmitOutbound(ctx context.Context, in models.OutboundSubmission) (models.SubmissionReceipt, error) {
	if err := validateMovement(in.Date, in.PlantName, in.MaterialNumber, in.NetQuantityMT); err != nil {
		return models.SubmissionReceipt{}, err
	}
	if strings.TrimSpace(in.ModeOfTransport) == "" {
		return models.SubmissionReceipt{}, invalid("modeOfTransport is required")
	}
	if strings.TrimSpace(in.CustomerNumber) == "" {
		return models.SubmissionReceipt{}, invalid("customerNumber is required")
	}

	tx := models.Transaction{
		Direction:       models.DirectionOutbound,
		Date:            strings.TrimSpace(in.Date),
		PlantName:       strings.TrimSpace(in.PlantName),
		MaterialName:    withPrefix(materialPrefix, in.MaterialNumber),
		NetQuantityMT:   in.NetQuantityMT,
		ModeOfTransport: strings.TrimSpace(in.ModeOfTransport),
		CustomerNumber:  withPrefix(customerPrefix, in.CustomerNumber),
	}
	if err := s.recorder.RecordOutbound(ctx, tx); err != nil {
		return models.SubmissionReceipt{}, fmt.Errorf("record outbound: %w", err)
	}

	s.logger.Info("outbound submitted",
		zap.String("plant", tx.PlantName),
		zap.String("material", tx.MaterialName),
		zap.String("customer", tx.CustomerNumber),
		zap.Float64("net_quantity_mt", tx.NetQuantityMT),
	)
	return s.receipt(models.SubmissionOutbound, 1), nil
}

// AddDraftItem validates a row and appends it to the user's inventory draft.
func (s *Service) AddDraftItem(userID string, req models.InventoryDraftItemRequest) (models.InventoryDraftItem, error) {
	item, err := buildDraftItem(req)
	if err != nil {
		return models.InventoryDraftItem{}, err
	}

	_, _ = s.drafts.Modify(userID, func(items []models.InventoryDraftItem) ([]models.InventoryDraftItem, error) {
		return append(slices.Clip(items), item), nil
	})
	return item, nil
}

// RemoveDraftItem deletes one row from the user's draft.
func (s *Service) RemoveDraftItem(userID, itemID string) error {
	_, err := s.drafts.Modify(userID, func(items []models.InventoryDraftItem) ([]models.InventoryDraftItem, error) {
		idx := slices.IndexFunc(items, func(it models.InventoryDraftItem) bool { return it.ID == itemID })
		if idx < 0 {
			return items, ErrDraftItemNotFound
		}
		return slices.Delete(slices.Clone(items), idx, idx+1), nil
	})
	return err
}

// Draft returns a copy of the user's current draft rows.
func (s *Service) Draft(userID string) []models.InventoryDraftItem {
	items := slices.Clone(s.drafts.Get(userID))
	if items == nil {
		items = []models.InventoryDraftItem{}
	}
	return items
}

// DiscardDraft drops every row of the user's draft.
func (s *Service) DiscardDraft(userID string) {
	s.drafts.Clear(userID)
}

// SubmitInventory records the user's draft as a balance for the given month
// and removes the submitted rows from the draft.
func (s *Service) SubmitInventory(ctx context.Context, userID string, in models.InventorySubmission) (models.SubmissionReceipt, error) {
	balanceDate, err := parseBalanceMonth(in.BalanceMonth)
	if err != nil {
		return models.SubmissionReceipt{}, err
	}
	plant := strings.TrimSpace(in.PlantName)
	if plant == "" {
		return models.SubmissionReceipt{}, invalid("plantName is required")
	}

	draft := s.Draft(userID)
	if len(draft) == 0 {
		return models.SubmissionReceipt{}, ErrEmptyDraft
	}

	records := make([]models.InventoryRecord, 0, len(draft))
	for _, item := range draft {
		records = append(records, models.InventoryRecord{
			BalanceDate:       balanceDate,
			PlantName:         plant,
			MaterialName:      item.MaterialName,
			BatchNumber:       item.BatchNumber,
			UnrestrictedStock: item.UnrestrictedStock,
			StockUnit:         item.StockUnit,
			StockSellValue:    item.StockSellValue,
			Currency:          item.Currency,
		})
	}
	if err := s.recorder.RecordInventory(ctx, records); err != nil {
		return models.SubmissionReceipt{}, fmt.Errorf("record inventory: %w", err)
	}

	submitted := make(map[string]struct{}, len(draft))
	for _, item := range draft {
		submitted[item.ID] = struct{}{}
	}
	_, _ = s.drafts.Modify(userID, func(items []models.InventoryDraftItem) ([]models.InventoryDraftItem, error) {
		return slices.DeleteFunc(slices.Clone(items), func(it models.InventoryDraftItem) bool {
			_, ok := submitted[it.ID]
			return ok
		}), nil
	})

	s.logger.Info("inventory submitted",
		zap.String("plant", plant),
		zap.String("balance_date", balanceDate),
		zap.Int("records", len(records)),
	)
	return s.receipt(models.SubmissionInventory, len(records)), nil
}

func (s *Service) receipt(kind models.SubmissionType, records int) models.SubmissionReceipt {
	return models.SubmissionReceipt{
		ID:          uuid.NewString(),
		Type:        kind,
		Message:     fmt.Sprintf("%s submission successful!", capitalize(string(kind))),
		Records:     records,
		SubmittedAt: s.now().UTC(),
	}
}

func validateMovement(date, plant, material string, quantity float64) error {
	if _, err := time.Parse(dateLayout, strings.TrimSpace(date)); err != nil {
		return invalid("date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(plant) == "" {
		return invalid("plantName is required")
	}
	if strings.TrimSpace(material) == "" {
		return invalid("materialNumber is required")
	}
	if quantity <= 0 {
		return invalid("netQuantityMT must be positive")
	}
	return nil
}

func buildDraftItem(req models.InventoryDraftItemRequest) (models.InventoryDraftItem, error) {
	switch {
	case strings.TrimSpace(req.MaterialNumber) == "":
		return models.InventoryDraftItem{}, invalid("materialNumber is required")
	case strings.TrimSpace(req.BatchNumber) == "":
		return models.InventoryDraftItem{}, invalid("batchNumber is required")
	case req.UnrestrictedStock <= 0:
		return models.InventoryDraftItem{}, invalid("unrestrictedStock must be positive")
	case !req.StockSellValue.IsPositive():
		return models.InventoryDraftItem{}, invalid("stockSellValue must be positive")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	if !slices.Contains(currencies, currency) {
		return models.InventoryDraftItem{}, invalid(fmt.Sprintf("currency must be one of %s", strings.Join(currencies, ", ")))
	}

	unit := strings.TrimSpace(req.StockUnit)
	if unit == "" {
		unit = defaultStockUnit
	}

	return models.InventoryDraftItem{
		ID:                uuid.NewString(),
		MaterialName:      withPrefix(materialPrefix, req.MaterialNumber),
		BatchNumber:       strings.TrimSpace(req.BatchNumber),
		UnrestrictedStock: req.UnrestrictedStock,
		StockUnit:         unit,
		StockSellValue:    req.StockSellValue,
		Currency:          currency,
	}, nil
}

// parseBalanceMonth accepts YYYY-MM-DD or YYYY-MM and returns MM-DD-YYYY.
func parseBalanceMonth(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{dateLayout, monthLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(balanceDateLayout), nil
		}
	}
	return "", invalid("balanceMonth must be YYYY-MM-DD or YYYY-MM")
}

// withPrefix adds prefix unless the user already typed it.
func withPrefix(prefix, number string) string {
	number = strings.TrimSpace(number)
	if len(number) >= len(prefix) && strings.EqualFold(number[:len(prefix)], prefix) {
		number = number[len(prefix):]
	}
	return prefix + number
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSubmission, reason)
}
