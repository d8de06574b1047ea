// Package shelflife estimates how many days a batch has left before it expires.
//
// The estimate is a seeded pseudo-random value: the same material, batch and
// anchor date always give the same answer.
package shelflife

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

const (
	dateLayout = "2006-01-02"

	lcgModulus = 233280
	lcgMulA    = 9301
	lcgIncA    = 49297
	lcgMulB    = 1234
	lcgIncB    = 5678

	variationSpan = 30
	minRemaining  = 5
)

// Balance dates arrive as M-D-YYYY from the plants; ISO dates are accepted too.
var balanceDateLayouts = []string{"1-2-2006", "01-02-2006", dateLayout}

// Range is the shelf-life profile of a material, in days.
type Range struct {
	Min   int
	Max   int
	Total int
}

// FallbackRange applies to materials missing from the table.
var FallbackRange = Range{Min: 60, Max: 200, Total: 300}

// DefaultTable returns the known material profiles.
func DefaultTable() map[string]Range {
	return map[string]Range{
		"MAT-0045": {Min: 45, Max: 120, Total: 180},
		"MAT-0100": {Min: 180, Max: 300, Total: 365},
		"MAT-0354": {Min: 90, Max: 200, Total: 270},
		"MAT-0144": {Min: 150, Max: 280, Total: 320},
		"MAT-0013": {Min: 30, Max: 90, Total: 150},
	}
}

// Anchor selects the date expiry is counted from.
type Anchor int

const (
	// AnchorToday counts from the caller's current date.
	AnchorToday Anchor = iota
	// AnchorBalanceDate counts from the record's balance date, falling back
	// to today when the balance date cannot be parsed.
	AnchorBalanceDate
)

// Estimator maps (material, batch) pairs to a shelf-life estimate.
type Estimator struct {
	table  map[string]Range
	anchor Anchor
}

// NewEstimator builds an estimator over the given table. A nil table means DefaultTable.
func NewEstimator(table map[string]Range, anchor Anchor) *Estimator {
	if table == nil {
		table = DefaultTable()
	}
	return &Estimator{table: table, anchor: anchor}
}

// RangeFor returns the profile used for a material.
func (e *Estimator) RangeFor(materialName string) Range {
	if r, ok := e.table[materialName]; ok {
		return r
	}
	return FallbackRange
}

// Estimate computes remaining and total shelf life plus the expiry date.
// It never fails: unknown materials use FallbackRange and the remaining
// days never drop below 5.
func (e *Estimator) Estimate(materialName, batchNumber, balanceDate string, today time.Time) models.ShelfLife {
	seed := Seed(materialName, batchNumber)
	r := e.RangeFor(materialName)

	frac1 := lcgFraction(seed, lcgMulA, lcgIncA)
	frac2 := lcgFraction(seed, lcgMulB, lcgIncB)

	base := int(math.Floor(float64(r.Min) + float64(r.Max-r.Min)*frac1))
	variation := int(math.Floor((frac2 - 0.5) * variationSpan))
	remaining := max(minRemaining, base+variation)

	anchor := e.anchorDate(balanceDate, today)
	expiry := anchor.AddDate(0, 0, remaining)

	return models.ShelfLife{
		Remaining:  remaining,
		Total:      r.Total,
		ExpiryDate: expiry.Format(dateLayout),
	}
}

func (e *Estimator) anchorDate(balanceDate string, today time.Time) time.Time {
	today = today.UTC()
	if e.anchor != AnchorBalanceDate {
		return today
	}
	for _, layout := range balanceDateLayouts {
		if t, err := time.Parse(layout, balanceDate); err == nil {
			return t
		}
	}
	return today
}

// Seed is the code point of the material's last character plus the number
// of characters in the batch number. An empty material contributes 0.
func Seed(materialName, batchNumber string) int {
	var last int
	if r, _ := utf8.DecodeLastRuneInString(materialName); r != utf8.RuneError {
		last = int(r)
	}
	return last + utf8.RuneCountInString(batchNumber)
}

func lcgFraction(seed, mul, inc int) float64 {
	return float64((seed*mul+inc)%lcgModulus) / lcgModulus
}
