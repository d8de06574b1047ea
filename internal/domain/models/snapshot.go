package models

import "time"

// DashboardSnapshot is the archived state of every dashboard card at TakenAt.
type DashboardSnapshot struct {
	TakenAt   time.Time         `bson:"taken_at" json:"takenAt"`
	Overview  WarehouseOverview `bson:"overview" json:"overview"`
	Health    HealthSummary     `bson:"health" json:"health"`
	Customers CustomerSummary   `bson:"customers" json:"customers"`
}
