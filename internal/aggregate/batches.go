// Package aggregate folds raw warehouse records into the dashboard's derived views.
package aggregate

import (
	"slices"
	"strconv"
	"time"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

const (
	criticalThreshold = 30
	warningThreshold  = 90
	criticalListSize  = 3
)

// ShelfLifeEstimator is satisfied by *shelflife.Estimator.
type ShelfLifeEstimator interface {
	Estimate(materialName, batchNumber, balanceDate string, today time.Time) models.ShelfLife
}

// ToBatchViews estimates every record, keeping input order. IDs are 1-based positions.
func ToBatchViews(records []models.InventoryRecord, est ShelfLifeEstimator, today time.Time) []models.BatchView {
	views := make([]models.BatchView, 0, len(records))
	for i, rec := range records {
		sl := est.Estimate(rec.MaterialName, rec.BatchNumber, rec.BalanceDate, today)
		views = append(views, models.BatchView{
			ID:                 strconv.Itoa(i + 1),
			BatchNumber:        rec.BatchNumber,
			Material:           rec.MaterialName,
			ShelfLifeRemaining: sl.Remaining,
			TotalShelfLife:     sl.Total,
			ExpiryDate:         sl.ExpiryDate,
		})
	}
	return views
}

// ToMaterialShelfLife groups records by material in first-seen order.
//
// Each repeat occurrence halves towards the new value: avg = (avg + remaining) / 2.
// That weights later batches more heavily than a true mean would; dashboards
// built on these numbers expect exactly this rule.
func ToMaterialShelfLife(records []models.InventoryRecord, est ShelfLifeEstimator, today time.Time) []models.MaterialShelfLifeView {
	views := make([]models.MaterialShelfLifeView, 0)
	index := make(map[string]int)

	for _, rec := range records {
		remaining := float64(est.Estimate(rec.MaterialName, rec.BatchNumber, rec.BalanceDate, today).Remaining)

		if i, ok := index[rec.MaterialName]; ok {
			views[i].AverageShelfLife = (views[i].AverageShelfLife + remaining) / 2
			views[i].BatchCount++
			continue
		}

		index[rec.MaterialName] = len(views)
		views = append(views, models.MaterialShelfLifeView{
			Material:         rec.MaterialName,
			AverageShelfLife: remaining,
			BatchCount:       1,
		})
	}

	return views
}

// StatusOf buckets remaining days: critical up to 30, warning up to 90, good above.
func StatusOf(remaining int) models.ShelfLifeStatus {
	switch {
	case remaining <= criticalThreshold:
		return models.StatusCritical
	case remaining <= warningThreshold:
		return models.StatusWarning
	default:
		return models.StatusGood
	}
}

// SummarizeHealth computes the health check cards. The average here is a
// plain arithmetic mean over batches.
func SummarizeHealth(batches []models.BatchView) models.HealthSummary {
	summary := models.HealthSummary{
		BatchCount:      len(batches),
		CriticalBatches: []models.BatchView{},
	}
	if len(batches) == 0 {
		summary.InsufficientData = true
		return summary
	}

	total := 0
	for _, b := range batches {
		total += b.ShelfLifeRemaining
		switch StatusOf(b.ShelfLifeRemaining) {
		case models.StatusCritical:
			summary.CriticalCount++
		case models.StatusWarning:
			summary.WarningCount++
		default:
			summary.GoodCount++
		}
	}
	summary.AverageShelfLife = float64(total) / float64(len(batches))

	sorted := slices.Clone(batches)
	slices.SortStableFunc(sorted, func(a, b models.BatchView) int {
		return a.ShelfLifeRemaining - b.ShelfLifeRemaining
	})
	summary.CriticalBatches = sorted[:min(criticalListSize, len(sorted))]

	return summary
}
