package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/shelflife"
)

var today = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func inventoryFixture() []models.InventoryRecord {
	return []models.InventoryRecord{
		{BalanceDate: "12-31-2023", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0045", BatchNumber: "SCRAP", UnrestrictedStock: 164, StockUnit: "KG", StockSellValue: decimal.NewFromInt(211), Currency: "CNY"},
		{BalanceDate: "2-29-2024", PlantName: "SINGAPORE-WAREHOUSE", MaterialName: "MAT-0100", BatchNumber: "E2278A", UnrestrictedStock: 1175, StockUnit: "KG", StockSellValue: decimal.NewFromInt(1210), Currency: "SGD"},
		{BalanceDate: "1-15-2024", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0354", BatchNumber: "B003", UnrestrictedStock: 850, StockUnit: "KG", StockSellValue: decimal.NewFromInt(425), Currency: "CNY"},
		{BalanceDate: "3-10-2024", PlantName: "SINGAPORE-WAREHOUSE", MaterialName: "MAT-0144", BatchNumber: "E2278B", UnrestrictedStock: 2200, StockUnit: "KG", StockSellValue: decimal.NewFromInt(3300), Currency: "SGD"},
		{BalanceDate: "1-05-2024", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0013", BatchNumber: "SCRAP2", UnrestrictedStock: 95, StockUnit: "KG", StockSellValue: decimal.NewFromInt(142), Currency: "CNY"},
	}
}

func TestToBatchViews(t *testing.T) {
	est := shelflife.NewEstimator(nil, shelflife.AnchorToday)
	views := ToBatchViews(inventoryFixture(), est, today)

	require.Len(t, views, 5)
	wantRemaining := []int{78, 217, 132, 212, 53}
	for i, v := range views {
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}[i], v.ID)
		assert.Equal(t, wantRemaining[i], v.ShelfLifeRemaining)
	}
	assert.Equal(t, models.BatchView{
		ID: "1", BatchNumber: "SCRAP", Material: "MAT-0045",
		ShelfLifeRemaining: 78, TotalShelfLife: 180, ExpiryDate: "2024-08-18",
	}, views[0])

	assert.Empty(t, ToBatchViews(nil, est, today))
}

func TestToMaterialShelfLifeDistinctMaterials(t *testing.T) {
	est := shelflife.NewEstimator(nil, shelflife.AnchorToday)
	records := inventoryFixture()
	views := ToMaterialShelfLife(records, est, today)

	require.Len(t, views, 5)
	for i, v := range views {
		sl := est.Estimate(records[i].MaterialName, records[i].BatchNumber, records[i].BalanceDate, today)
		assert.Equal(t, records[i].MaterialName, v.Material)
		assert.Equal(t, 1, v.BatchCount)
		assert.Equal(t, float64(sl.Remaining), v.AverageShelfLife)
	}
}

func TestToMaterialShelfLifeHalvingRule(t *testing.T) {
	est := shelflife.NewEstimator(nil, shelflife.AnchorToday)
	records := []models.InventoryRecord{
		{MaterialName: "MAT-0045", BatchNumber: "SCRAP"},  // 78
		{MaterialName: "MAT-0013", BatchNumber: "SCRAP2"}, // 53
		{MaterialName: "MAT-0045", BatchNumber: "SCRAP2"}, // 82
		{MaterialName: "MAT-0045", BatchNumber: "B1"},     // 69
	}

	views := ToMaterialShelfLife(records, est, today)
	require.Len(t, views, 2)

	assert.Equal(t, "MAT-0045", views[0].Material)
	assert.Equal(t, 3, views[0].BatchCount)
	// ((78+82)/2 + 69)/2, not the arithmetic mean 76.33.
	assert.Equal(t, 74.5, views[0].AverageShelfLife)

	assert.Equal(t, "MAT-0013", views[1].Material)
	assert.Equal(t, 1, views[1].BatchCount)

	assert.Empty(t, ToMaterialShelfLife(nil, est, today))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, models.StatusCritical, StatusOf(5))
	assert.Equal(t, models.StatusCritical, StatusOf(30))
	assert.Equal(t, models.StatusWarning, StatusOf(31))
	assert.Equal(t, models.StatusWarning, StatusOf(90))
	assert.Equal(t, models.StatusGood, StatusOf(91))
}

func TestSummarizeHealth(t *testing.T) {
	est := shelflife.NewEstimator(nil, shelflife.AnchorToday)
	summary := SummarizeHealth(ToBatchViews(inventoryFixture(), est, today))

	assert.Equal(t, 5, summary.BatchCount)
	assert.InDelta(t, 138.4, summary.AverageShelfLife, 1e-9)
	assert.Equal(t, 0, summary.CriticalCount)
	assert.Equal(t, 2, summary.WarningCount)
	assert.Equal(t, 3, summary.GoodCount)
	assert.False(t, summary.InsufficientData)

	require.Len(t, summary.CriticalBatches, 3)
	assert.Equal(t, "MAT-0013", summary.CriticalBatches[0].Material)
	assert.Equal(t, "MAT-0045", summary.CriticalBatches[1].Material)
	assert.Equal(t, "MAT-0354", summary.CriticalBatches[2].Material)
}

func TestSummarizeHealthEmpty(t *testing.T) {
	summary := SummarizeHealth(nil)
	assert.True(t, summary.InsufficientData)
	assert.Zero(t, summary.AverageShelfLife)
	assert.NotNil(t, summary.CriticalBatches)
	assert.Empty(t, summary.CriticalBatches)
}

func TestSummarizeHealthDoesNotReorderInput(t *testing.T) {
	batches := []models.BatchView{
		{ID: "1", ShelfLifeRemaining: 100},
		{ID: "2", ShelfLifeRemaining: 10},
	}
	summary := SummarizeHealth(batches)

	assert.Equal(t, "1", batches[0].ID)
	require.Len(t, summary.CriticalBatches, 2)
	assert.Equal(t, "2", summary.CriticalBatches[0].ID)
	assert.Equal(t, 1, summary.CriticalCount)
	assert.Equal(t, 1, summary.GoodCount)
}

func TestStockValueByCurrencyTotals(t *testing.T) {
	vals := StockValueByCurrency(inventoryFixture())
	require.Len(t, vals, 2)

	assert.Equal(t, "CNY", vals[0].Currency)
	assert.Equal(t, 3, vals[0].Records)
	assert.Equal(t, float64(164+850+95), vals[0].TotalStock)
	assert.True(t, decimal.NewFromInt(778).Equal(vals[0].TotalValue))

	assert.Equal(t, "SGD", vals[1].Currency)
	assert.True(t, decimal.NewFromInt(4510).Equal(vals[1].TotalValue))

	assert.Empty(t, StockValueByCurrency(nil))
}
