package aggregate

import (
	"math"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

const (
	displayUnitsPerMT  = 1000
	dailySeriesLength  = 7
	chartInboundScale  = 20
	chartOutboundScale = 18
)

// OverviewSettings are the configured, not computed, overview figures.
type OverviewSettings struct {
	Onground              int
	PredictedOutbound     int
	InventoryTarget       int
	OperationCostPerDay   int
	OperationCostPerMonth int
}

// DefaultOverviewSettings mirrors the figures the dashboard shipped with.
func DefaultOverviewSettings() OverviewSettings {
	return OverviewSettings{
		Onground:              3420,
		PredictedOutbound:     1200,
		InventoryTarget:       4000,
		OperationCostPerDay:   15000,
		OperationCostPerMonth: 450000,
	}
}

// TotalMT sums the net quantity of the transactions.
func TotalMT(txs []models.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		total += tx.NetQuantityMT
	}
	return total
}

// SummarizeOverview builds the overview card from inbound and outbound movements.
func SummarizeOverview(inbound, outbound []models.Transaction, settings OverviewSettings) models.WarehouseOverview {
	inboundMT := TotalMT(inbound)
	outboundMT := TotalMT(outbound)
	inboundUnits := int(math.Round(inboundMT * displayUnitsPerMT))

	return models.WarehouseOverview{
		Inbound:               inboundUnits,
		Outbound:              int(math.Round(outboundMT * displayUnitsPerMT)),
		Onground:              settings.Onground,
		Target:                settings.Onground + inboundUnits - settings.PredictedOutbound,
		PredictedOutbound:     settings.PredictedOutbound,
		InventoryTarget:       settings.InventoryTarget,
		OperationCostPerDay:   settings.OperationCostPerDay,
		OperationCostPerMonth: settings.OperationCostPerMonth,
		InboundTotalMT:        inboundMT,
		OutboundTotalMT:       outboundMT,
	}
}

// DailySeries returns the first seven days of the throughput chart. Where a
// transaction exists at the same position, its quantity replaces the day's
// inbound (x20) or outbound (x18) figure.
func DailySeries(days []models.DailyMetrics, inbound, outbound []models.Transaction) []models.DailyMetrics {
	n := min(dailySeriesLength, len(days))
	series := make([]models.DailyMetrics, 0, n)

	for i := 0; i < n; i++ {
		day := days[i]
		if i < len(inbound) {
			day.Inbound = int(math.Round(inbound[i].NetQuantityMT * chartInboundScale))
		}
		if i < len(outbound) {
			day.Outbound = int(math.Round(outbound[i].NetQuantityMT * chartOutboundScale))
		}
		series = append(series, day)
	}

	return series
}
