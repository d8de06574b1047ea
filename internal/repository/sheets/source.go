package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

const (
	inventoryRange = "Inventory!A:H"
	inboundRange   = "Inbound!A:D"
	outboundRange  = "Outbound!A:F"
	customersRange = "Customers!A:H"
	dailyRange     = "Daily!A:I"
	carryOverRange = "CarryOver!A:C"
)

// Source maps worksheet rows to dashboard records. Rows that do not parse,
// header rows included, are skipped.
type Source struct {
	client RangeClient
	logger *zap.Logger
}

// NewSource wraps a range client.
func NewSource(client RangeClient, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{client: client, logger: logger}
}

// Inventory reads BALANCE_AS_OF_DATE, PLANT, MATERIAL, BATCH, STOCK, UNIT, SELL_VALUE, CURRENCY.
func (s *Source) Inventory(ctx context.Context) ([]models.InventoryRecord, error) {
	return readRows(ctx, s, inventoryRange, 8, func(row []interface{}) (models.InventoryRecord, error) {
		stock, err := parseFloat(row[4])
		if err != nil {
			return models.InventoryRecord{}, err
		}
		value, err := parseDecimal(row[6])
		if err != nil {
			return models.InventoryRecord{}, err
		}
		return models.InventoryRecord{
			BalanceDate:       cell(row[0]),
			PlantName:         cell(row[1]),
			MaterialName:      cell(row[2]),
			BatchNumber:       cell(row[3]),
			UnrestrictedStock: stock,
			StockUnit:         cell(row[5]),
			StockSellValue:    value,
			Currency:          cell(row[7]),
		}, nil
	})
}

// Inbound reads INBOUND_DATE, PLANT, MATERIAL, NET_QUANTITY_MT.
func (s *Source) Inbound(ctx context.Context) ([]models.Transaction, error) {
	return readRows(ctx, s, inboundRange, 4, func(row []interface{}) (models.Transaction, error) {
		qty, err := parseFloat(row[3])
		if err != nil {
			return models.Transaction{}, err
		}
		return models.Transaction{
			Direction:     models.DirectionInbound,
			Date:          cell(row[0]),
			PlantName:     cell(row[1]),
			MaterialName:  cell(row[2]),
			NetQuantityMT: qty,
		}, nil
	})
}

// Outbound reads OUTBOUND_DATE, PLANT, MODE_OF_TRANSPORT, MATERIAL, CUSTOMER, NET_QUANTITY_MT.
func (s *Source) Outbound(ctx context.Context) ([]models.Transaction, error) {
	return readRows(ctx, s, outboundRange, 6, func(row []interface{}) (models.Transaction, error) {
		qty, err := parseFloat(row[5])
		if err != nil {
			return models.Transaction{}, err
		}
		return models.Transaction{
			Direction:       models.DirectionOutbound,
			Date:            cell(row[0]),
			PlantName:       cell(row[1]),
			ModeOfTransport: cell(row[2]),
			MaterialName:    cell(row[3]),
			CustomerNumber:  cell(row[4]),
			NetQuantityMT:   qty,
		}, nil
	})
}

// Customers reads ID, NAME, SCORE, TOTAL_ORDERS, RETURNED, RETURN_RATE, LAST_ORDER, RISK.
func (s *Source) Customers(ctx context.Context) ([]models.CustomerScore, error) {
	return readRows(ctx, s, customersRange, 8, func(row []interface{}) (models.CustomerScore, error) {
		score, err := parseFloat(row[2])
		if err != nil {
			return models.CustomerScore{}, err
		}
		total, err := parseInt(row[3])
		if err != nil {
			return models.CustomerScore{}, err
		}
		returned, err := parseInt(row[4])
		if err != nil {
			return models.CustomerScore{}, err
		}
		rate, err := parseFloat(strings.TrimSuffix(cell(row[5]), "%"))
		if err != nil {
			return models.CustomerScore{}, err
		}
		return models.CustomerScore{
			ID:             cell(row[0]),
			CustomerName:   cell(row[1]),
			Score:          score,
			TotalOrders:    total,
			ReturnedOrders: returned,
			ReturnRate:     rate,
			LastOrderDate:  cell(row[6]),
			RiskLevel:      models.RiskLevel(cell(row[7])),
		}, nil
	})
}

// DailyMetrics reads DATE followed by the eight chart figures.
func (s *Source) DailyMetrics(ctx context.Context) ([]models.DailyMetrics, error) {
	return readRows(ctx, s, dailyRange, 9, func(row []interface{}) (models.DailyMetrics, error) {
		var nums [8]int
		for i := range nums {
			n, err := parseInt(row[i+1])
			if err != nil {
				return models.DailyMetrics{}, err
			}
			nums[i] = n
		}
		return models.DailyMetrics{
			Date:            cell(row[0]),
			CarryOver:       nums[0],
			Inbound:         nums[1],
			Outbound:        nums[2],
			UncleanOrder:    nums[3],
			Target:          nums[4],
			MaxCapacity:     nums[5],
			InventoryTarget: nums[6],
			MaxThroughput:   nums[7],
		}, nil
	})
}

// CarryOver reads DATE, CARRY_OVER, DAY.
func (s *Source) CarryOver(ctx context.Context) ([]models.CarryOver, error) {
	return readRows(ctx, s, carryOverRange, 3, func(row []interface{}) (models.CarryOver, error) {
		n, err := parseInt(row[1])
		if err != nil {
			return models.CarryOver{}, err
		}
		return models.CarryOver{Date: cell(row[0]), CarryOver: n, Day: cell(row[2])}, nil
	})
}

// RecordInbound appends an inbound movement row.
func (s *Source) RecordInbound(ctx context.Context, tx models.Transaction) error {
	row := []interface{}{tx.Date, tx.PlantName, tx.MaterialName, tx.NetQuantityMT}
	return s.client.AppendRows(ctx, inboundRange, [][]interface{}{row})
}

// RecordOutbound appends an outbound movement row.
func (s *Source) RecordOutbound(ctx context.Context, tx models.Transaction) error {
	row := []interface{}{tx.Date, tx.PlantName, tx.ModeOfTransport, tx.MaterialName, tx.CustomerNumber, tx.NetQuantityMT}
	return s.client.AppendRows(ctx, outboundRange, [][]interface{}{row})
}

// RecordInventory appends all balance lines in one call.
func (s *Source) RecordInventory(ctx context.Context, records []models.InventoryRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.BalanceDate, rec.PlantName, rec.MaterialName, rec.BatchNumber,
			rec.UnrestrictedStock, rec.StockUnit, rec.StockSellValue.String(), rec.Currency,
		})
	}
	return s.client.AppendRows(ctx, inventoryRange, rows)
}

func readRows[T any](ctx context.Context, s *Source, sheetRange string, width int, parse func([]interface{}) (T, error)) ([]T, error) {
	rows, err := s.client.ReadRange(ctx, sheetRange)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", sheetRange, err)
	}

	out := make([]T, 0, len(rows))
	for i, row := range rows {
		if len(row) < width {
			s.logger.Debug("skip short row", zap.String("range", sheetRange), zap.Int("row", i+1), zap.Int("cells", len(row)))
			continue
		}
		rec, err := parse(row)
		if err != nil {
			s.logger.Debug("skip unparsable row", zap.String("range", sheetRange), zap.Int("row", i+1), zap.Error(err))
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}

func cell(value interface{}) string {
	return strings.TrimSpace(fmt.Sprint(value))
}

func numeric(value interface{}) (string, error) {
	str := strings.ReplaceAll(cell(value), ",", "")
	if str == "" {
		return "", fmt.Errorf("empty numeric value")
	}
	return str, nil
}

func parseInt(value interface{}) (int, error) {
	str, err := numeric(value)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(str)
}

func parseFloat(value interface{}) (float64, error) {
	str, err := numeric(value)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(str, 64)
}

func parseDecimal(value interface{}) (decimal.Decimal, error) {
	str, err := numeric(value)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(str)
}
