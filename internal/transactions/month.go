package transactions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidMonth is returned for month tokens that are not a 4-digit year
// and a 1-2 digit month in 1..12, separated by a dash.
var ErrInvalidMonth = errors.New("month must be in YYYY-MM format (e.g., 2025-10)")

// MonthRange is the half-open interval [Start, End) covering one calendar
// month, in UTC.
type MonthRange struct {
	Token string // normalized YYYY-MM
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time // first instant of the following month, exclusive
	Days  int
}

// ParseMonth resolves a "YYYY-MM" token into its month range and day count.
func ParseMonth(token string) (MonthRange, error) {
	token = strings.TrimSpace(token)
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return MonthRange{}, ErrInvalidMonth
	}

	if len(parts[0]) != 4 {
		return MonthRange{}, ErrInvalidMonth
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return MonthRange{}, ErrInvalidMonth
	}

	if len(parts[1]) < 1 || len(parts[1]) > 2 {
		return MonthRange{}, ErrInvalidMonth
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return MonthRange{}, ErrInvalidMonth
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return MonthRange{
		Token: fmt.Sprintf("%04d-%02d", year, month),
		Year:  year,
		Month: time.Month(month),
		Start: start,
		End:   end,
		Days:  int(end.Sub(start).Hours() / 24),
	}, nil
}

// Contains reports whether t falls inside [Start, End).
func (r MonthRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// DayKey returns the YYYY-MM-DD key for a day of the month (1-based).
func (r MonthRange) DayKey(day int) string {
	return fmt.Sprintf("%s-%02d", r.Token, day)
}
