package static

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

func seedInventory() []models.InventoryRecord {
	return []models.InventoryRecord{
		{BalanceDate: "12-31-2023", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0045", BatchNumber: "SCRAP", UnrestrictedStock: 164, StockUnit: "KG", StockSellValue: decimal.NewFromInt(211), Currency: "CNY"},
		{BalanceDate: "2-29-2024", PlantName: "SINGAPORE-WAREHOUSE", MaterialName: "MAT-0100", BatchNumber: "E2278A", UnrestrictedStock: 1175, StockUnit: "KG", StockSellValue: decimal.NewFromInt(1210), Currency: "SGD"},
		{BalanceDate: "1-15-2024", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0354", BatchNumber: "B003", UnrestrictedStock: 850, StockUnit: "KG", StockSellValue: decimal.NewFromInt(425), Currency: "CNY"},
		{BalanceDate: "3-10-2024", PlantName: "SINGAPORE-WAREHOUSE", MaterialName: "MAT-0144", BatchNumber: "E2278B", UnrestrictedStock: 2200, StockUnit: "KG", StockSellValue: decimal.NewFromInt(3300), Currency: "SGD"},
		{BalanceDate: "1-05-2024", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0013", BatchNumber: "SCRAP2", UnrestrictedStock: 95, StockUnit: "KG", StockSellValue: decimal.NewFromInt(142), Currency: "CNY"},
	}
}

func seedInbound() []models.Transaction {
	return []models.Transaction{
		{Direction: models.DirectionInbound, Date: "2023-12-15", PlantName: "SINGAPORE-WAREHOUSE", MaterialName: "MAT-0354", NetQuantityMT: 23.375},
		{Direction: models.DirectionInbound, Date: "2024-09-23", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0144", NetQuantityMT: 25.5},
		{Direction: models.DirectionInbound, Date: "2024-01-10", PlantName: "SINGAPORE-WAREHOUSE", MaterialName: "MAT-0045", NetQuantityMT: 18.75},
		{Direction: models.DirectionInbound, Date: "2024-02-05", PlantName: "CHINA-WAREHOUSE", MaterialName: "MAT-0100", NetQuantityMT: 32.125},
		{Direction: models.DirectionInbound, Date: "2024-01-20", PlantName: "SINGAPORE-WAREHOUSE", MaterialName: "MAT-0013", NetQuantityMT: 15.25},
	}
}

func seedOutbound() []models.Transaction {
	return []models.Transaction{
		{Direction: models.DirectionOutbound, Date: "2024-01-02", PlantName: "CHINA-WAREHOUSE", ModeOfTransport: "Truck", MaterialName: "MAT-0013", CustomerNumber: "CST-00001", NetQuantityMT: 25.5},
		{Direction: models.DirectionOutbound, Date: "2025-01-02", PlantName: "SINGAPORE-WAREHOUSE", ModeOfTransport: "Marine", MaterialName: "MAT-0012", CustomerNumber: "CST-01467", NetQuantityMT: 9.625},
		{Direction: models.DirectionOutbound, Date: "2024-01-15", PlantName: "SINGAPORE-WAREHOUSE", ModeOfTransport: "Marine", MaterialName: "MAT-0354", CustomerNumber: "CST-00234", NetQuantityMT: 12.75},
		{Direction: models.DirectionOutbound, Date: "2024-02-08", PlantName: "CHINA-WAREHOUSE", ModeOfTransport: "Truck", MaterialName: "MAT-0100", CustomerNumber: "CST-00567", NetQuantityMT: 28.375},
		{Direction: models.DirectionOutbound, Date: "2024-01-25", PlantName: "SINGAPORE-WAREHOUSE", ModeOfTransport: "Marine", MaterialName: "MAT-0045", CustomerNumber: "CST-00890", NetQuantityMT: 16.5},
	}
}

func seedCustomers() []models.CustomerScore {
	return []models.CustomerScore{
		{ID: "1", CustomerName: "ABC Corp", Score: 85, TotalOrders: 150, ReturnedOrders: 8, ReturnRate: 5.3, LastOrderDate: "2024-01-05", RiskLevel: models.RiskLow},
		{ID: "2", CustomerName: "XYZ Ltd", Score: 72, TotalOrders: 89, ReturnedOrders: 12, ReturnRate: 13.5, LastOrderDate: "2024-01-03", RiskLevel: models.RiskMedium},
		{ID: "3", CustomerName: "Tech Solutions", Score: 45, TotalOrders: 45, ReturnedOrders: 18, ReturnRate: 40.0, LastOrderDate: "2024-01-01", RiskLevel: models.RiskHigh},
		{ID: "4", CustomerName: "Global Trade", Score: 91, TotalOrders: 200, ReturnedOrders: 5, ReturnRate: 2.5, LastOrderDate: "2024-01-06", RiskLevel: models.RiskLow},
		{ID: "5", CustomerName: "Metro Supplies", Score: 68, TotalOrders: 75, ReturnedOrders: 15, ReturnRate: 20.0, LastOrderDate: "2024-01-04", RiskLevel: models.RiskMedium},
	}
}

func seedDaily() []models.DailyMetrics {
	rows := []struct {
		date                                       string
		carryOver, inbound, outbound, unclean, tgt int
	}{
		{"2024-01-01", 120, 450, 380, 25, 3650},
		{"2024-01-02", 85, 520, 420, 30, 3790},
		{"2024-01-03", 95, 380, 450, 20, 3750},
		{"2024-01-04", 75, 600, 520, 35, 3900},
		{"2024-01-05", 110, 480, 390, 28, 3860},
		{"2024-01-06", 65, 420, 480, 22, 3890},
		{"2024-01-07", 90, 550, 510, 40, 3960},
	}

	out := make([]models.DailyMetrics, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.DailyMetrics{
			Date:            r.date,
			CarryOver:       r.carryOver,
			Inbound:         r.inbound,
			Outbound:        r.outbound,
			UncleanOrder:    r.unclean,
			Target:          r.tgt,
			MaxCapacity:     5000,
			InventoryTarget: 4000,
			MaxThroughput:   1500,
		})
	}
	return out
}

func seedCarryOver() []models.CarryOver {
	values := []int{120, 85, 95, 75, 110, 65, 90, 105, 80, 125, 95, 70, 115, 100, 130, 85, 140, 110, 155, 120, 175}
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	out := make([]models.CarryOver, 0, len(values))
	for i, v := range values {
		out = append(out, models.CarryOver{
			Date:      fmt.Sprintf("2024-01-%02d", i+1),
			CarryOver: v,
			Day:       days[i%len(days)],
		})
	}
	return out
}
