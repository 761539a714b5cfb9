package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinor(t *testing.T) {
	got, err := ToMinor(12.34)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), got)

	got, err = ToMinor(0)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = ToMinor(0.005)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "rounds half up")
}

func TestToMinorRejectsInvalid(t *testing.T) {
	for name, v := range map[string]float64{
		"negative":  -1,
		"nan":       math.NaN(),
		"inf":       math.Inf(1),
		"too large": 1e17,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ToMinor(v)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "123.45", FormatMinor(12345))
	assert.Equal(t, "0.05", FormatMinor(5))
	assert.Equal(t, "-0.50", FormatMinor(-50))
	assert.Equal(t, "0.00", FormatMinor(0))
}
