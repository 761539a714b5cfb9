package transactions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	r, err := ParseMonth("2025-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-10", r.Token)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), r.End)
	assert.Equal(t, 31, r.Days)
}

func TestParseMonthSingleDigit(t *testing.T) {
	r, err := ParseMonth("2025-2")
	require.NoError(t, err)

	assert.Equal(t, "2025-02", r.Token)
	assert.Equal(t, 28, r.Days)
}

func TestParseMonthLeapYear(t *testing.T) {
	r, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 29, r.Days)

	r, err = ParseMonth("2025-02")
	require.NoError(t, err)
	assert.Equal(t, 28, r.Days)
}

func TestParseMonthDecemberWrapsYear(t *testing.T) {
	r, err := ParseMonth("2025-12")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), r.End)
	assert.Equal(t, 31, r.Days)
}

func TestParseMonthInvalid(t *testing.T) {
	for _, token := range []string{
		"",
		"abc",
		"2025/10",
		"2025-13",
		"2025-00",
		"25-01",
		"2025-1-1",
		"202510",
		"2025-",
		"-10",
		"20255-1",
		"2025-010",
	} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseMonth(token)
			assert.ErrorIs(t, err, ErrInvalidMonth)
		})
	}
}

func TestMonthRangeContains(t *testing.T) {
	r, err := ParseMonth("2025-10")
	require.NoError(t, err)

	assert.True(t, r.Contains(r.Start), "first instant of the month is included")
	assert.True(t, r.Contains(time.Date(2025, time.October, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(r.End), "first instant of the next month is excluded")
	assert.False(t, r.Contains(r.Start.Add(-time.Second)))
}

func TestMonthRangeDayKey(t *testing.T) {
	r, err := ParseMonth("2025-2")
	require.NoError(t, err)

	assert.Equal(t, "2025-02-01", r.DayKey(1))
	assert.Equal(t, "2025-02-28", r.DayKey(28))
}
