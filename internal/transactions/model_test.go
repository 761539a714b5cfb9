package transactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseType(t *testing.T) {
	for raw, want := range map[string]Type{
		"income":     TypeIncome,
		"Expense":    TypeExpense,
		" TRANSFER ": TypeTransfer,
	} {
		got, ok := ParseType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "loan", "in come"} {
		_, ok := ParseType(raw)
		assert.False(t, ok, raw)
	}
}
