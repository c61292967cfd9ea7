package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{name: "ISO", input: "2026-03-15", expected: date(2026, time.March, 15)},
		{name: "European", input: "15.03.2026", expected: date(2026, time.March, 15)},
		{name: "WithWhitespace", input: "  2026-03-15 ", expected: date(2026, time.March, 15)},
		{name: "Invalid", input: "not-a-date", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, _, err := ParseDate(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{name: "SimpleAddition", start: date(2026, time.January, 15), months: 1, expected: date(2026, time.February, 15)},
		{name: "MonthEndClamping", start: date(2026, time.January, 31), months: 1, expected: date(2026, time.February, 28)},
		{name: "LeapYearClamping", start: date(2028, time.January, 31), months: 1, expected: date(2028, time.February, 29)},
		{name: "AcrossYearBoundary", start: date(2026, time.November, 30), months: 3, expected: date(2027, time.February, 28)},
		{name: "ZeroMonths", start: date(2026, time.August, 26), months: 0, expected: date(2026, time.August, 26)},
		{name: "ManyMonths", start: date(2026, time.May, 31), months: 13, expected: date(2027, time.June, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonthsPreservesTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.March, 10, 14, 30, 5, 0, time.UTC)
	result := AddMonths(start, 2)

	assert.Equal(t, time.Date(2026, time.May, 10, 14, 30, 5, 0, time.UTC), result)
}

func TestStartAndEndOfMonth(t *testing.T) {
	d := date(2026, time.February, 14)

	assert.Equal(t, date(2026, time.February, 1), StartOfMonth(d))
	assert.Equal(t, date(2026, time.February, 28), EndOfMonth(d))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2026-08-26", ToISODate(date(2026, time.August, 26)))
}
