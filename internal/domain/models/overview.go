package models

// WarehouseOverview is the top card of the overview dashboard. Inbound and
// Outbound are display units (MT x 1000).
type WarehouseOverview struct {
	Inbound               int     `json:"inbound" bson:"inbound"`
	Outbound              int     `json:"outbound" bson:"outbound"`
	Onground              int     `json:"onground" bson:"onground"`
	Target                int     `json:"target" bson:"target"`
	PredictedOutbound     int     `json:"predictedOutbound" bson:"predicted_outbound"`
	InventoryTarget       int     `json:"inventoryTarget" bson:"inventory_target"`
	OperationCostPerDay   int     `json:"operationCostPerDay" bson:"operation_cost_per_day"`
	OperationCostPerMonth int     `json:"operationCostPerMonth" bson:"operation_cost_per_month"`
	InboundTotalMT        float64 `json:"inboundTotalMT" bson:"inbound_total_mt"`
	OutboundTotalMT       float64 `json:"outboundTotalMT" bson:"outbound_total_mt"`
}

// DailyMetrics is one day of the throughput chart.
type DailyMetrics struct {
	Date            string `json:"date"`
	CarryOver       int    `json:"carryOver"`
	Inbound         int    `json:"inbound"`
	Outbound        int    `json:"outbound"`
	UncleanOrder    int    `json:"uncleanOrder"`
	Target          int    `json:"target"`
	MaxCapacity     int    `json:"maxCapacity"`
	InventoryTarget int    `json:"inventoryTarget"`
	MaxThroughput   int    `json:"maxThroughput"`
}

// CarryOver is the quantity rolled into the next day.
type CarryOver struct {
	Date      string `json:"date"`
	CarryOver int    `json:"carryOver"`
	Day       string `json:"day"`
}

// DailyOverview bundles both overview charts.
type DailyOverview struct {
	Series    []DailyMetrics `json:"series"`
	CarryOver []CarryOver    `json:"carryOver"`
}
