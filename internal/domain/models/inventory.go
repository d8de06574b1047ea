package models

import "github.com/shopspring/decimal"

// InventoryRecord is one stock balance line as reported by a plant.
// BalanceDate keeps the source's M-D-YYYY text form.
type InventoryRecord struct {
	BalanceDate       string          `json:"balanceDate" bson:"balance_date"`
	PlantName         string          `json:"plantName" bson:"plant_name"`
	MaterialName      string          `json:"materialName" bson:"material_name"`
	BatchNumber       string          `json:"batchNumber" bson:"batch_number"`
	UnrestrictedStock float64         `json:"unrestrictedStock" bson:"unrestricted_stock"`
	StockUnit         string          `json:"stockUnit" bson:"stock_unit"`
	StockSellValue    decimal.Decimal `json:"stockSellValue" bson:"stock_sell_value"`
	Currency          string          `json:"currency" bson:"currency"`
}

// Direction tells inbound and outbound transactions apart.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Transaction is a single inbound or outbound material movement.
// Outbound-only fields stay empty for inbound movements.
type Transaction struct {
	Direction       Direction `json:"direction"`
	Date            string    `json:"date"`
	PlantName       string    `json:"plantName"`
	MaterialName    string    `json:"materialName"`
	NetQuantityMT   float64   `json:"netQuantityMT"`
	ModeOfTransport string    `json:"modeOfTransport,omitempty"`
	CustomerNumber  string    `json:"customerNumber,omitempty"`
}

// CurrencyValuation totals stock and sell value for one currency.
type CurrencyValuation struct {
	Currency   string          `json:"currency"`
	Records    int             `json:"records"`
	TotalStock float64         `json:"totalStock"`
	TotalValue decimal.Decimal `json:"totalValue"`
}
