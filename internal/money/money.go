package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// ToMinor converts a decimal major-unit value (like 12.34) to minor units as
// int64 safely. Prefer sending minor units directly from clients; this exists
// only for user-entered decimals.
func ToMinor(major float64) (int64, error) {
	if math.IsNaN(major) || math.IsInf(major, 0) {
		return 0, ErrInvalidAmount
	}
	if major < 0 {
		return 0, ErrInvalidAmount
	}
	// int64 max ~9e18, so major must stay under ~9e16
	if major > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	minor := int64(math.Round(major * 100.0))
	if minor < 0 {
		return 0, ErrInvalidAmount
	}
	return minor, nil
}

// FormatMinor renders minor units as a "123.45" style string without going
// through floats.
func FormatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
