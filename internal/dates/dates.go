// Package dates parses, formats and orders the date strings carried in
// post front matter.
package dates

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"
)

// InvalidDate is what the formatters print for an unparseable input.
const InvalidDate = "Invalid Date"

// isoDate matches a calendar date with an optional time of day and offset.
var isoDate = regexp.MustCompile(
	`^(\d{4})-(\d{2})-(\d{2})` +
		`(?:[T ](\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?)?` +
		`(Z|[+-]\d{2}:\d{2})?$`)

var monthAbbrev = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Value is a parsed date. The zero Value is invalid.
type Value struct {
	t     time.Time
	valid bool
}

// Valid reports whether the source string parsed.
func (v Value) Valid() bool { return v.valid }

// Time returns the parsed instant, or the zero time for an invalid Value.
func (v Value) Time() time.Time { return v.t }

// Compare orders valid values chronologically. Invalid values compare equal
// to each other and after every valid value.
func (v Value) Compare(o Value) int {
	switch {
	case !v.valid && !o.valid:
		return 0
	case !v.valid:
		return 1
	case !o.valid:
		return -1
	}
	return v.t.Compare(o.t)
}

// Parse interprets s as an ISO-8601 calendar date, optionally followed by a
// time of day and an offset. Days past the end of the month roll over, so
// "2023-02-29" is March 1. No offset means UTC. Parse never fails; an
// unrecognised string yields an invalid Value.
func Parse(s string) Value {
	m := isoDate.FindStringSubmatch(s)
	if m == nil {
		return Value{}
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Value{}
	}

	var hour, minute, sec, nsec int
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if hour > 23 || minute > 59 {
			return Value{}
		}
	}
	if m[6] != "" {
		sec, _ = strconv.Atoi(m[6])
		if sec > 59 {
			return Value{}
		}
	}
	if m[7] != "" {
		frac := m[7]
		for len(frac) < 9 {
			frac += "0"
		}
		nsec, _ = strconv.Atoi(frac)
	}

	loc := time.UTC
	if off := m[8]; off != "" && off != "Z" {
		oh, _ := strconv.Atoi(off[1:3])
		om, _ := strconv.Atoi(off[4:6])
		if oh > 23 || om > 59 {
			return Value{}
		}
		secs := oh*3600 + om*60
		if off[0] == '-' {
			secs = -secs
		}
		loc = time.FixedZone(off, secs)
	}

	return Value{
		t:     time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc),
		valid: true,
	}
}

// IsValid reports whether s parses as a date.
func IsValid(s string) bool {
	return Parse(s).Valid()
}

// FormatLong renders s as "January 15, 2024".
func FormatLong(s string) string {
	v := Parse(s)
	if !v.valid {
		return InvalidDate
	}
	return fmt.Sprintf("%s %d, %d", v.t.Month(), v.t.Day(), v.t.Year())
}

// FormatShort renders s as "Jan 15, 2024".
func FormatShort(s string) string {
	v := Parse(s)
	if !v.valid {
		return InvalidDate
	}
	return fmt.Sprintf("%s %d, %d", monthAbbrev[v.t.Month()-1], v.t.Day(), v.t.Year())
}

// SortDescending returns a copy of items ordered newest first by the date
// that key extracts. Equal dates keep their input order and invalid dates
// go last.
func SortDescending[T any](items []T, key func(T) string) []T {
	return sortBy(items, key, true)
}

// SortAscending returns a copy of items ordered oldest first by the date
// that key extracts. Equal dates keep their input order and invalid dates
// go last.
func SortAscending[T any](items []T, key func(T) string) []T {
	return sortBy(items, key, false)
}

type keyed[T any] struct {
	item T
	date Value
}

func sortBy[T any](items []T, key func(T) string, desc bool) []T {
	ks := make([]keyed[T], len(items))
	for i, it := range items {
		ks[i] = keyed[T]{item: it, date: Parse(key(it))}
	}

	slices.SortStableFunc(ks, func(a, b keyed[T]) int {
		if !a.date.valid || !b.date.valid {
			return a.date.Compare(b.date)
		}
		if desc {
			return b.date.Compare(a.date)
		}
		return a.date.Compare(b.date)
	})

	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out
}
