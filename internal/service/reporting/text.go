package reporting

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/aggregate"
	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/sorting"
)

// OverviewText renders the overview card as a chat message.
func (s *Service) OverviewText(ctx context.Context) (string, error) {
	o, err := s.Overview(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Warehouse overview: inbound %.2f MT, outbound %.2f MT. On ground %d, target %d, predicted outbound %d. Operation cost %d/day.",
		o.InboundTotalMT, o.OutboundTotalMT, o.Onground, o.Target, o.PredictedOutbound, o.OperationCostPerDay,
	), nil
}

// HealthText renders the shelf-life health summary as a chat message.
func (s *Service) HealthText(ctx context.Context) (string, error) {
	h, err := s.Health(ctx)
	if err != nil {
		return "", err
	}
	if h.InsufficientData {
		return "Shelf life: no batches recorded yet.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shelf life (%d batches): average %.1f days. Critical %d, warning %d, good %d.",
		h.BatchCount, h.AverageShelfLife, h.CriticalCount, h.WarningCount, h.GoodCount)

	shortest := make([]string, 0, len(h.CriticalBatches))
	for _, batch := range h.CriticalBatches {
		shortest = append(shortest, fmt.Sprintf("%s (%s) %dd", batch.BatchNumber, batch.Material, batch.ShelfLifeRemaining))
	}
	fmt.Fprintf(&b, " Shortest: %s.", strings.Join(shortest, ", "))

	return b.String(), nil
}

// CreditText renders the credit scoring summary as a chat message.
func (s *Service) CreditText(ctx context.Context) (string, error) {
	c, err := s.CustomerSummary(ctx)
	if err != nil {
		return "", err
	}
	if c.CustomerCount == 0 {
		return "Credit scoring: no customers recorded yet.", nil
	}

	rate := "n/a"
	if !c.InsufficientData {
		rate = fmt.Sprintf("%.2f%%", c.OverallReturnRate)
	}

	return fmt.Sprintf("Credit scoring (%d customers): average score %.1f, %d high risk, return rate %s.",
		c.CustomerCount, c.AverageScore, c.HighRiskCount, rate), nil
}

// CriticalAlert lists every batch in the critical bucket. ok is false when
// there is nothing to report.
func (s *Service) CriticalAlert(ctx context.Context) (message string, ok bool, err error) {
	batches, err := s.Batches(ctx, sorting.State{Field: "shelfLifeRemaining", Direction: sorting.Asc})
	if err != nil {
		return "", false, err
	}

	critical := sorting.Filter(batches, func(b models.BatchView) bool {
		return aggregate.StatusOf(b.ShelfLifeRemaining) == models.StatusCritical
	})
	if len(critical) == 0 {
		return "", false, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shelf life alert: %d batch(es) at or below 30 days.", len(critical))
	for _, batch := range critical {
		fmt.Fprintf(&b, "\n- %s (%s): %d days left, expires %s", batch.BatchNumber, batch.Material, batch.ShelfLifeRemaining, batch.ExpiryDate)
	}

	return b.String(), true, nil
}

// Brief joins the three text summaries. Sections that fail are skipped.
func (s *Service) Brief(ctx context.Context) string {
	sections := make([]string, 0, 3)
	for _, fn := range []func(context.Context) (string, error){s.OverviewText, s.HealthText, s.CreditText} {
		text, err := fn(ctx)
		if err != nil {
			s.logger.Debug("brief section failed", zap.Error(err))
			continue
		}
		sections = append(sections, text)
	}
	return strings.Join(sections, "\n")
}
