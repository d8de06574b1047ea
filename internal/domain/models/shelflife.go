package models

// ShelfLife is the estimator's verdict for one batch.
type ShelfLife struct {
	Remaining  int    `json:"remaining"`
	Total      int    `json:"total"`
	ExpiryDate string `json:"expiryDate"`
}

// BatchView is the per-batch row of the health check table.
type BatchView struct {
	ID                 string `json:"id"`
	BatchNumber        string `json:"batchNumber"`
	Material           string `json:"material"`
	ShelfLifeRemaining int    `json:"shelfLifeRemaining"`
	TotalShelfLife     int    `json:"totalShelfLife"`
	ExpiryDate         string `json:"expiryDate"`
}

// MaterialShelfLifeView is the per-material row of the health check table.
type MaterialShelfLifeView struct {
	Material         string  `json:"material"`
	AverageShelfLife float64 `json:"averageShelfLife"`
	BatchCount       int     `json:"batchCount"`
}

// ShelfLifeStatus buckets a batch by remaining days.
type ShelfLifeStatus string

const (
	StatusCritical ShelfLifeStatus = "critical"
	StatusWarning  ShelfLifeStatus = "warning"
	StatusGood     ShelfLifeStatus = "good"
)

// HealthSummary feeds the cards at the top of the health check page.
type HealthSummary struct {
	BatchCount       int         `json:"batchCount" bson:"batch_count"`
	AverageShelfLife float64     `json:"averageShelfLife" bson:"average_shelf_life"`
	CriticalBatches  []BatchView `json:"criticalBatches" bson:"critical_batches"`
	CriticalCount    int         `json:"criticalCount" bson:"critical_count"`
	WarningCount     int         `json:"warningCount" bson:"warning_count"`
	GoodCount        int         `json:"goodCount" bson:"good_count"`
	InsufficientData bool        `json:"insufficientData" bson:"insufficient_data"`
}
