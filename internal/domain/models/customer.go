package models

// RiskLevel is the coarse bucket assigned to a customer.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// CustomerScore is an authored credit-scoring row. Score, ReturnRate and
// RiskLevel are independent fields; nothing keeps them consistent.
type CustomerScore struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	Score          float64   `json:"score"`
	TotalOrders    int       `json:"totalOrders"`
	ReturnedOrders int       `json:"returnedOrders"`
	ReturnRate     float64   `json:"returnRate"`
	LastOrderDate  string    `json:"lastOrderDate"`
	RiskLevel      RiskLevel `json:"riskLevel"`
}

// CustomerRow is a credit scoring table row with its trend arrow.
type CustomerRow struct {
	CustomerScore
	Trend ScoreTrend `json:"trend"`
}

// CustomerSummary feeds the credit scoring cards.
type CustomerSummary struct {
	CustomerCount     int     `json:"customerCount" bson:"customer_count"`
	AverageScore      float64 `json:"averageScore" bson:"average_score"`
	HighRiskCount     int     `json:"highRiskCount" bson:"high_risk_count"`
	OverallReturnRate float64 `json:"overallReturnRate" bson:"overall_return_rate"`
	InsufficientData  bool    `json:"insufficientData" bson:"insufficient_data"`
}

// ScoreTrend is the arrow shown next to a credit score.
type ScoreTrend string

const (
	TrendUp   ScoreTrend = "up"
	TrendFlat ScoreTrend = "flat"
	TrendDown ScoreTrend = "down"
)
