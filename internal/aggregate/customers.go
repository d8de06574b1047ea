package aggregate

import "github.com/mamadbah2/warehouse/internal/domain/models"

const (
	trendUpScore   = 80
	trendDownScore = 60
)

// SummarizeCustomers computes the credit scoring cards.
//
// Ratios over empty denominators are reported as 0 with InsufficientData set:
// no customers zeroes the average score, and zero total orders zeroes the
// overall return rate.
func SummarizeCustomers(records []models.CustomerScore) models.CustomerSummary {
	summary := models.CustomerSummary{CustomerCount: len(records)}
	if len(records) == 0 {
		summary.InsufficientData = true
		return summary
	}

	var scoreSum float64
	var returned, orders int
	for _, rec := range records {
		scoreSum += rec.Score
		returned += rec.ReturnedOrders
		orders += rec.TotalOrders
		if rec.RiskLevel == models.RiskHigh {
			summary.HighRiskCount++
		}
	}

	summary.AverageScore = scoreSum / float64(len(records))
	if orders == 0 {
		summary.InsufficientData = true
		return summary
	}
	summary.OverallReturnRate = 100 * float64(returned) / float64(orders)

	return summary
}

// ScoreTrend returns the indicator shown next to a score.
func ScoreTrend(score float64) models.ScoreTrend {
	switch {
	case score >= trendUpScore:
		return models.TrendUp
	case score < trendDownScore:
		return models.TrendDown
	default:
		return models.TrendFlat
	}
}

// ToCustomerRows attaches the trend indicator to each row, keeping order.
func ToCustomerRows(records []models.CustomerScore) []models.CustomerRow {
	rows := make([]models.CustomerRow, len(records))
	for i, rec := range records {
		rows[i] = models.CustomerRow{CustomerScore: rec, Trend: ScoreTrend(rec.Score)}
	}
	return rows
}
