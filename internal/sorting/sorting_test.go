package sorting

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string
	Days  int
	Group string
}

var rowFields = Fields[row]{
	"name":  TextField(func(r row) string { return r.Name }),
	"days":  NumberField(func(r row) float64 { return float64(r.Days) }),
	"group": TextField(func(r row) string { return r.Group }),
}

func rows() []row {
	return []row{
		{Name: "SCRAP", Days: 78, Group: "b"},
		{Name: "e2278a", Days: 217, Group: "a"},
		{Name: "B003", Days: 132, Group: "b"},
		{Name: "E2278B", Days: 212, Group: "a"},
		{Name: "SCRAP2", Days: 53, Group: "b"},
	}
}

func names(rs []row) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestSortByNumber(t *testing.T) {
	input := rows()
	got, err := SortBy(input, rowFields, "days", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"SCRAP2", "SCRAP", "B003", "E2278B", "e2278a"}, names(got))

	desc, err := SortBy(input, rowFields, "days", Desc)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2278a", "E2278B", "B003", "SCRAP", "SCRAP2"}, names(desc))

	assert.Equal(t, rows(), input, "input must not be reordered")
}

func TestSortByTextIsLocaleAware(t *testing.T) {
	got, err := SortBy(rows(), rowFields, "name", Asc)
	require.NoError(t, err)
	// Collation ignores case at the primary level, unlike a byte-wise sort.
	assert.Equal(t, []string{"B003", "e2278a", "E2278B", "SCRAP", "SCRAP2"}, names(got))
}

func TestSortByIsStable(t *testing.T) {
	asc, err := SortBy(rows(), rowFields, "group", Asc)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2278a", "E2278B", "SCRAP", "B003", "SCRAP2"}, names(asc))

	desc, err := SortBy(rows(), rowFields, "group", Desc)
	require.NoError(t, err)
	assert.Equal(t, []string{"SCRAP", "B003", "SCRAP2", "e2278a", "E2278B"}, names(desc))
}

func TestSortByIdempotentAndReversible(t *testing.T) {
	once, err := SortBy(rows(), rowFields, "days", Desc)
	require.NoError(t, err)
	twice, err := SortBy(once, rowFields, "days", Desc)
	require.NoError(t, err)
	assert.Equal(t, once, twice)

	asc, err := SortBy(once, rowFields, "days", Asc)
	require.NoError(t, err)
	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	assert.Equal(t, once, reversed)
}

func TestSortByUnknownField(t *testing.T) {
	_, err := SortBy(rows(), rowFields, "colour", Asc)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSortByEmpty(t *testing.T) {
	got, err := SortBy(nil, rowFields, "days", Asc)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"": Asc, "asc": Asc, "DESC": Desc, " desc ": Desc} {
		got, err := ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseDirection("up")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestStateToggle(t *testing.T) {
	s := State{Field: "shelfLifeRemaining", Direction: Asc}

	s = s.Toggle("shelfLifeRemaining")
	assert.Equal(t, State{Field: "shelfLifeRemaining", Direction: Desc}, s)

	s = s.Toggle("shelfLifeRemaining")
	assert.Equal(t, Asc, s.Direction)

	s = s.Toggle("shelfLifeRemaining").Toggle("batchNumber")
	assert.Equal(t, State{Field: "batchNumber", Direction: Asc}, s)
}

func TestFilter(t *testing.T) {
	input := rows()
	got := Filter(input, func(r row) bool { return r.Days <= 90 })
	assert.Equal(t, []string{"SCRAP", "SCRAP2"}, names(got))
	assert.Len(t, input, 5)
	assert.Empty(t, Filter(input, func(row) bool { return false }))
}
