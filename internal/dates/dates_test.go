package dates

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   int
	date string
}

func itemDate(i item) string { return i.date }

func ids(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func TestParse(t *testing.T) {
	v := Parse("2024-01-15")
	require.True(t, v.Valid())
	assert.Equal(t, 2024, v.Time().Year())
	assert.Equal(t, time.January, v.Time().Month())
	assert.Equal(t, 15, v.Time().Day())
	assert.Equal(t, time.UTC, v.Time().Location())

	withTime := Parse("2024-01-15T10:30:00")
	require.True(t, withTime.Valid())
	assert.Equal(t, 10, withTime.Time().Hour())
	assert.Equal(t, 30, withTime.Time().Minute())
	assert.Equal(t, v.Time().Year(), withTime.Time().Year())
}

func TestParseOffsetAndFraction(t *testing.T) {
	v := Parse("2024-03-01T23:15:00.5-05:00")
	require.True(t, v.Valid())
	assert.Equal(t, 1, v.Time().Day())
	assert.Equal(t, 500*time.Millisecond, time.Duration(v.Time().Nanosecond()))
	_, off := v.Time().Zone()
	assert.Equal(t, -5*3600, off)

	assert.True(t, Parse("2024-03-01T23:15Z").Valid())
	assert.True(t, Parse("2024-03-01 23:15:09").Valid())
}

func TestParseRollsOverDay(t *testing.T) {
	v := Parse("2023-02-29")
	require.True(t, v.Valid())
	assert.Equal(t, time.March, v.Time().Month())
	assert.Equal(t, 1, v.Time().Day())
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-15", true},
		{"2023-12-25", true},
		{"2024-02-29", true},
		{"2023-02-29", true},
		{"2024-01-15T10:30:00", true},
		{"invalid", false},
		{"", false},
		{"not-a-date", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-01-32", false},
		{"2024-01-15T24:00", false},
		{"2024-1-5", false},
		{" 2024-01-15", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValid(tt.input), "IsValid(%q)", tt.input)
	}
}

func TestFormatLong(t *testing.T) {
	assert.Equal(t, "January 15, 2024", FormatLong("2024-01-15"))
	assert.Equal(t, "December 25, 2023", FormatLong("2023-12-25"))
	assert.Equal(t, "June 1, 2024", FormatLong("2024-06-01"))
	assert.Equal(t, "January 15, 2024", FormatLong("2024-01-15T10:30:00"))
	assert.Equal(t, InvalidDate, FormatLong("nope"))
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024", FormatShort("2024-01-15"))
	assert.Equal(t, "Dec 25, 2023", FormatShort("2023-12-25"))
	assert.Equal(t, "Jun 1, 2024", FormatShort("2024-06-01"))
	assert.Equal(t, InvalidDate, FormatShort(""))
}

func TestSortDescending(t *testing.T) {
	items := []item{
		{1, "2024-01-01"},
		{2, "2024-06-15"},
		{3, "2024-03-10"},
	}
	original := slices.Clone(items)

	sorted := SortDescending(items, itemDate)
	assert.Equal(t, []int{2, 3, 1}, ids(sorted))
	assert.Equal(t, original, items, "input must not change")
}

func TestSortAscending(t *testing.T) {
	items := []item{
		{1, "2024-01-01"},
		{2, "2024-06-15"},
		{3, "2024-03-10"},
	}
	original := slices.Clone(items)

	sorted := SortAscending(items, itemDate)
	assert.Equal(t, []int{1, 3, 2}, ids(sorted))
	assert.Equal(t, original, items, "input must not change")
}

func TestSortEdgeCases(t *testing.T) {
	assert.Empty(t, SortDescending([]item{}, itemDate))
	assert.Empty(t, SortAscending[item](nil, itemDate))

	single := []item{{1, "2024-01-01"}}
	assert.Equal(t, single, SortDescending(single, itemDate))
	assert.Equal(t, single, SortAscending(single, itemDate))
}

func TestSortIsStable(t *testing.T) {
	items := []item{
		{1, "2024-01-01"},
		{2, "2024-05-01"},
		{3, "2024-01-01"},
		{4, "2024-05-01"},
	}
	assert.Equal(t, []int{2, 4, 1, 3}, ids(SortDescending(items, itemDate)))
	assert.Equal(t, []int{1, 3, 2, 4}, ids(SortAscending(items, itemDate)))
}

func TestSortInvalidDatesLast(t *testing.T) {
	items := []item{
		{1, "garbage"},
		{2, "2024-01-01"},
		{3, ""},
		{4, "2024-06-01"},
	}
	assert.Equal(t, []int{4, 2, 1, 3}, ids(SortDescending(items, itemDate)))
	assert.Equal(t, []int{2, 4, 1, 3}, ids(SortAscending(items, itemDate)))
}

func TestSortProperties(t *testing.T) {
	items := []item{
		{1, "2021-07-04"},
		{2, "2024-02-29"},
		{3, "2019-11-30T08:00:00"},
		{4, "2022-01-01"},
		{5, "2020-05-05"},
	}

	desc := SortDescending(items, itemDate)
	asc := SortAscending(items, itemDate)

	assert.Equal(t, desc, SortDescending(desc, itemDate), "descending is idempotent")
	assert.Equal(t, asc, SortAscending(asc, itemDate), "ascending is idempotent")

	reversed := slices.Clone(desc)
	slices.Reverse(reversed)
	assert.Equal(t, asc, reversed)
}

func TestValueCompare(t *testing.T) {
	a, b, bad := Parse("2024-01-01"), Parse("2024-01-02"), Parse("x")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, bad.Compare(a))
	assert.Equal(t, -1, a.Compare(bad))
	assert.Equal(t, 0, bad.Compare(Value{}))
}
