package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

func inboundFixture() []models.Transaction {
	return []models.Transaction{
		{Direction: models.DirectionInbound, MaterialName: "MAT-0354", NetQuantityMT: 23.375},
		{Direction: models.DirectionInbound, MaterialName: "MAT-0144", NetQuantityMT: 25.5},
		{Direction: models.DirectionInbound, MaterialName: "MAT-0045", NetQuantityMT: 18.75},
		{Direction: models.DirectionInbound, MaterialName: "MAT-0100", NetQuantityMT: 32.125},
		{Direction: models.DirectionInbound, MaterialName: "MAT-0013", NetQuantityMT: 15.25},
	}
}

func outboundFixture() []models.Transaction {
	return []models.Transaction{
		{Direction: models.DirectionOutbound, MaterialName: "MAT-0013", NetQuantityMT: 25.5},
		{Direction: models.DirectionOutbound, MaterialName: "MAT-0012", NetQuantityMT: 9.625},
		{Direction: models.DirectionOutbound, MaterialName: "MAT-0354", NetQuantityMT: 12.75},
		{Direction: models.DirectionOutbound, MaterialName: "MAT-0100", NetQuantityMT: 28.375},
		{Direction: models.DirectionOutbound, MaterialName: "MAT-0045", NetQuantityMT: 16.5},
	}
}

func TestSummarizeOverview(t *testing.T) {
	got := SummarizeOverview(inboundFixture(), outboundFixture(), DefaultOverviewSettings())

	assert.Equal(t, models.WarehouseOverview{
		Inbound:               115000,
		Outbound:              92750,
		Onground:              3420,
		Target:                117220,
		PredictedOutbound:     1200,
		InventoryTarget:       4000,
		OperationCostPerDay:   15000,
		OperationCostPerMonth: 450000,
		InboundTotalMT:        115,
		OutboundTotalMT:       92.75,
	}, got)
}

func TestSummarizeOverviewEmpty(t *testing.T) {
	settings := OverviewSettings{Onground: 10, PredictedOutbound: 4}
	got := SummarizeOverview(nil, nil, settings)

	assert.Zero(t, got.Inbound)
	assert.Zero(t, got.Outbound)
	assert.Equal(t, 6, got.Target)
	assert.Zero(t, got.InboundTotalMT)
}

func TestDailySeries(t *testing.T) {
	days := make([]models.DailyMetrics, 8)
	for i := range days {
		days[i] = models.DailyMetrics{Inbound: 100 + i, Outbound: 200 + i, MaxCapacity: 5000}
	}

	series := DailySeries(days, inboundFixture(), outboundFixture()[:2])
	require.Len(t, series, 7)

	assert.Equal(t, 468, series[0].Inbound) // 23.375 * 20 rounds half up
	assert.Equal(t, 459, series[0].Outbound)
	assert.Equal(t, 173, series[1].Outbound)
	assert.Equal(t, 305, series[4].Inbound)
	assert.Equal(t, 105, series[5].Inbound)
	assert.Equal(t, 202, series[2].Outbound)
	assert.Equal(t, 5000, series[6].MaxCapacity)
	assert.Equal(t, 100, days[0].Inbound)

	assert.Empty(t, DailySeries(nil, inboundFixture(), nil))
}
