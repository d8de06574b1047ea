// Package sorting orders dashboard tables by a named column.
package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrUnknownField is returned when a table has no column with the requested name.
var ErrUnknownField = errors.New("unknown sort field")

// ErrInvalidDirection is returned by ParseDirection for anything but asc or desc.
var ErrInvalidDirection = errors.New("invalid sort direction")

// Direction is the ordering of a sorted column.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" in any case; empty means Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Asc):
		return Asc, nil
	case string(Desc):
		return Desc, nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidDirection, s)
	}
}

// Field extracts one sortable column. Exactly one of Number or Text is set.
type Field[T any] struct {
	Number func(T) float64
	Text   func(T) string
}

// NumberField declares a numeric column.
func NumberField[T any](fn func(T) float64) Field[T] {
	return Field[T]{Number: fn}
}

// TextField declares a text column compared with locale-aware collation.
func TextField[T any](fn func(T) string) Field[T] {
	return Field[T]{Text: fn}
}

// Fields names the sortable columns of a table.
type Fields[T any] map[string]Field[T]

// SortBy returns a sorted copy of items; the input slice is left untouched.
// The sort is stable, so equal keys keep their input order in both directions.
func SortBy[T any](items []T, fields Fields[T], field string, dir Direction) ([]T, error) {
	f, ok := fields[field]
	if !ok || (f.Number == nil && f.Text == nil) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	compare := comparator(f)
	if dir == Desc {
		asc := compare
		compare = func(a, b T) int { return asc(b, a) }
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out, nil
}

func comparator[T any](f Field[T]) func(a, b T) int {
	if f.Number != nil {
		return func(a, b T) int {
			return cmp.Compare(f.Number(a), f.Number(b))
		}
	}

	// A Collator keeps internal buffers and is not safe to share across goroutines.
	c := collate.New(language.English)
	return func(a, b T) int {
		return c.CompareString(f.Text(a), f.Text(b))
	}
}

// Filter returns the items matching keep, in order, without modifying items.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// State is the sort currently applied to a table.
type State struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle applies a header click: the same field flips direction, a new
// field starts ascending.
func (s State) Toggle(field string) State {
	if s.Field == field {
		if s.Direction == Asc {
			return State{Field: field, Direction: Desc}
		}
		return State{Field: field, Direction: Asc}
	}
	return State{Field: field, Direction: Asc}
}
