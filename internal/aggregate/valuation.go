package aggregate

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// StockValueByCurrency totals stock and sell value per currency, ordered by currency code.
func StockValueByCurrency(records []models.InventoryRecord) []models.CurrencyValuation {
	byCurrency := make(map[string]*models.CurrencyValuation)

	for _, rec := range records {
		code := strings.ToUpper(strings.TrimSpace(rec.Currency))
		v, ok := byCurrency[code]
		if !ok {
			v = &models.CurrencyValuation{Currency: code, TotalValue: decimal.Zero}
			byCurrency[code] = v
		}
		v.Records++
		v.TotalStock += rec.UnrestrictedStock
		v.TotalValue = v.TotalValue.Add(rec.StockSellValue)
	}

	out := make([]models.CurrencyValuation, 0, len(byCurrency))
	for _, v := range byCurrency {
		out = append(out, *v)
	}
	slices.SortFunc(out, func(a, b models.CurrencyValuation) int {
		return strings.Compare(a.Currency, b.Currency)
	})
	return out
}
