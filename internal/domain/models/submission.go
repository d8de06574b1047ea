package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionType names the three data-entry forms.
type SubmissionType string

const (
	SubmissionInbound   SubmissionType = "inbound"
	SubmissionOutbound  SubmissionType = "outbound"
	SubmissionInventory SubmissionType = "inventory"
)

// InboundSubmission is the inbound form. MaterialNumber is entered without the MAT- prefix.
type InboundSubmission struct {
	Date           string  `json:"date" binding:"required"`
	PlantName      string  `json:"plantName" binding:"required"`
	MaterialNumber string  `json:"materialNumber" binding:"required"`
	NetQuantityMT  float64 `json:"netQuantityMT"`
}

// OutboundSubmission is the outbound form. CustomerNumber is entered without the CST- prefix.
type OutboundSubmission struct {
	Date            string  `json:"date" binding:"required"`
	PlantName       string  `json:"plantName" binding:"required"`
	MaterialNumber  string  `json:"materialNumber" binding:"required"`
	ModeOfTransport string  `json:"modeOfTransport" binding:"required"`
	CustomerNumber  string  `json:"customerNumber" binding:"required"`
	NetQuantityMT   float64 `json:"netQuantityMT"`
}

// InventoryDraftItem is one row of the inventory table before submission.
type InventoryDraftItem struct {
	ID                string          `json:"id"`
	MaterialName      string          `json:"materialName"`
	BatchNumber       string          `json:"batchNumber"`
	UnrestrictedStock float64         `json:"unrestrictedStock"`
	StockUnit         string          `json:"stockUnit"`
	StockSellValue    decimal.Decimal `json:"stockSellValue"`
	Currency          string          `json:"currency"`
}

// InventoryDraftItemRequest is the add-row form. MaterialNumber is entered without the MAT- prefix.
type InventoryDraftItemRequest struct {
	MaterialNumber    string          `json:"materialNumber"`
	BatchNumber       string          `json:"batchNumber"`
	UnrestrictedStock float64         `json:"unrestrictedStock"`
	StockUnit         string          `json:"stockUnit"`
	StockSellValue    decimal.Decimal `json:"stockSellValue"`
	Currency          string          `json:"currency"`
}

// InventorySubmission closes a draft. BalanceMonth is YYYY-MM-DD.
type InventorySubmission struct {
	BalanceMonth string `json:"balanceMonth" binding:"required"`
	PlantName    string `json:"plantName" binding:"required"`
}

// SubmissionReceipt acknowledges an accepted submission.
type SubmissionReceipt struct {
	ID          string         `json:"id"`
	Type        SubmissionType `json:"type"`
	Message     string         `json:"message"`
	Records     int            `json:"records"`
	SubmittedAt time.Time      `json:"submittedAt"`
}
