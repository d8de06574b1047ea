package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

func customerFixture() []models.CustomerScore {
	return []models.CustomerScore{
		{ID: "1", CustomerName: "ABC Corp", Score: 85, TotalOrders: 150, ReturnedOrders: 8, ReturnRate: 5.3, RiskLevel: models.RiskLow},
		{ID: "2", CustomerName: "XYZ Ltd", Score: 72, TotalOrders: 89, ReturnedOrders: 12, ReturnRate: 13.5, RiskLevel: models.RiskMedium},
		{ID: "3", CustomerName: "Tech Solutions", Score: 45, TotalOrders: 45, ReturnedOrders: 18, ReturnRate: 40.0, RiskLevel: models.RiskHigh},
		{ID: "4", CustomerName: "Global Trade", Score: 91, TotalOrders: 200, ReturnedOrders: 5, ReturnRate: 2.5, RiskLevel: models.RiskLow},
		{ID: "5", CustomerName: "Metro Supplies", Score: 68, TotalOrders: 75, ReturnedOrders: 15, ReturnRate: 20.0, RiskLevel: models.RiskMedium},
	}
}

func TestSummarizeCustomers(t *testing.T) {
	s := SummarizeCustomers(customerFixture())

	assert.Equal(t, 5, s.CustomerCount)
	assert.InDelta(t, 72.2, s.AverageScore, 1e-9)
	assert.Equal(t, 1, s.HighRiskCount)
	assert.InDelta(t, 100*58.0/559.0, s.OverallReturnRate, 1e-9)
	assert.InDelta(t, 10.38, s.OverallReturnRate, 0.005)
	assert.False(t, s.InsufficientData)
}

func TestSummarizeCustomersEmpty(t *testing.T) {
	s := SummarizeCustomers(nil)
	assert.Equal(t, models.CustomerSummary{InsufficientData: true}, s)
}

func TestSummarizeCustomersWithoutOrders(t *testing.T) {
	s := SummarizeCustomers([]models.CustomerScore{
		{CustomerName: "New Co", Score: 50, RiskLevel: models.RiskHigh},
	})
	assert.Equal(t, 50.0, s.AverageScore)
	assert.Equal(t, 1, s.HighRiskCount)
	assert.Zero(t, s.OverallReturnRate)
	assert.True(t, s.InsufficientData)
}

func TestScoreTrend(t *testing.T) {
	assert.Equal(t, models.TrendUp, ScoreTrend(80))
	assert.Equal(t, models.TrendFlat, ScoreTrend(79.9))
	assert.Equal(t, models.TrendFlat, ScoreTrend(60))
	assert.Equal(t, models.TrendDown, ScoreTrend(59))
}

func TestToCustomerRows(t *testing.T) {
	rows := ToCustomerRows([]models.CustomerScore{
		{ID: "1", Score: 91},
		{ID: "2", Score: 68},
		{ID: "3", Score: 45},
	})

	assert.Equal(t, []models.CustomerRow{
		{CustomerScore: models.CustomerScore{ID: "1", Score: 91}, Trend: models.TrendUp},
		{CustomerScore: models.CustomerScore{ID: "2", Score: 68}, Trend: models.TrendFlat},
		{CustomerScore: models.CustomerScore{ID: "3", Score: 45}, Trend: models.TrendDown},
	}, rows)
	assert.Empty(t, ToCustomerRows(nil))
}
