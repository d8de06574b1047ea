package reporting

import (
	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/sorting"
)

// BatchFields are the sortable columns of the batch table.
var BatchFields = sorting.Fields[models.BatchView]{
	"id":                 sorting.TextField(func(b models.BatchView) string { return b.ID }),
	"batchNumber":        sorting.TextField(func(b models.BatchView) string { return b.BatchNumber }),
	"material":           sorting.TextField(func(b models.BatchView) string { return b.Material }),
	"shelfLifeRemaining": sorting.NumberField(func(b models.BatchView) float64 { return float64(b.ShelfLifeRemaining) }),
	"totalShelfLife":     sorting.NumberField(func(b models.BatchView) float64 { return float64(b.TotalShelfLife) }),
	"expiryDate":         sorting.TextField(func(b models.BatchView) string { return b.ExpiryDate }),
}

// MaterialFields are the sortable columns of the material table.
var MaterialFields = sorting.Fields[models.MaterialShelfLifeView]{
	"material":         sorting.TextField(func(m models.MaterialShelfLifeView) string { return m.Material }),
	"averageShelfLife": sorting.NumberField(func(m models.MaterialShelfLifeView) float64 { return m.AverageShelfLife }),
	"batchCount":       sorting.NumberField(func(m models.MaterialShelfLifeView) float64 { return float64(m.BatchCount) }),
}

// CustomerFields are the sortable columns of the credit scoring table.
var CustomerFields = sorting.Fields[models.CustomerScore]{
	"id":             sorting.TextField(func(c models.CustomerScore) string { return c.ID }),
	"customerName":   sorting.TextField(func(c models.CustomerScore) string { return c.CustomerName }),
	"score":          sorting.NumberField(func(c models.CustomerScore) float64 { return c.Score }),
	"totalOrders":    sorting.NumberField(func(c models.CustomerScore) float64 { return float64(c.TotalOrders) }),
	"returnedOrders": sorting.NumberField(func(c models.CustomerScore) float64 { return float64(c.ReturnedOrders) }),
	"returnRate":     sorting.NumberField(func(c models.CustomerScore) float64 { return c.ReturnRate }),
	"lastOrderDate":  sorting.TextField(func(c models.CustomerScore) string { return c.LastOrderDate }),
	"riskLevel":      sorting.TextField(func(c models.CustomerScore) string { return string(c.RiskLevel) }),
}
