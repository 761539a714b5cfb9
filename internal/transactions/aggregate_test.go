package transactions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMonth(t *testing.T, token string) MonthRange {
	t.Helper()
	r, err := ParseMonth(token)
	require.NoError(t, err)
	return r
}

func tx(typ Type, amount int64, date time.Time) Transaction {
	return Transaction{Type: typ, Amount: amount, Date: date}
}

func TestSumMonthEmpty(t *testing.T) {
	r := mustMonth(t, "2025-10")

	got := SumMonth(r, nil)

	assert.Equal(t, MonthlyTotals{Month: "2025-10"}, got)
}

func TestSumMonthScenario(t *testing.T) {
	r := mustMonth(t, "2025-10")
	txs := []Transaction{
		tx(TypeIncome, 500, time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)),
		tx(TypeExpense, 120, time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)),
		tx(TypeTransfer, 50, time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC)),
	}

	got := SumMonth(r, txs)

	assert.Equal(t, int64(500), got.TotalIncome)
	assert.Equal(t, int64(120), got.TotalExpense)
	assert.Equal(t, int64(380), got.Profit)
}

func TestSumMonthTransfersExcluded(t *testing.T) {
	r := mustMonth(t, "2025-10")
	txs := []Transaction{
		tx(TypeTransfer, 1000, time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)),
		tx(TypeTransfer, 2000, time.Date(2025, time.October, 11, 12, 0, 0, 0, time.UTC)),
	}

	got := SumMonth(r, txs)

	assert.Zero(t, got.TotalIncome)
	assert.Zero(t, got.TotalExpense)
	assert.Zero(t, got.Profit)
}

func TestSumMonthBounds(t *testing.T) {
	r := mustMonth(t, "2025-10")
	txs := []Transaction{
		tx(TypeIncome, 100, r.Start),                  // first instant, included
		tx(TypeIncome, 200, r.End),                    // midnight of next month, excluded
		tx(TypeExpense, 300, r.Start.Add(-time.Hour)), // previous month, excluded
	}

	got := SumMonth(r, txs)

	assert.Equal(t, int64(100), got.TotalIncome)
	assert.Zero(t, got.TotalExpense)
}

func TestSumMonthProfitIdentity(t *testing.T) {
	r := mustMonth(t, "2025-06")
	txs := []Transaction{
		tx(TypeIncome, 123456789, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
		tx(TypeIncome, 1, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)),
		tx(TypeExpense, 987654321, time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)),
		tx(TypeExpense, 3, time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)),
	}

	got := SumMonth(r, txs)

	assert.Equal(t, got.TotalIncome-got.TotalExpense, got.Profit)
	assert.Equal(t, int64(123456790), got.TotalIncome)
	assert.Equal(t, int64(987654324), got.TotalExpense)
}

func TestDailyBucketsFebruaryNonLeap(t *testing.T) {
	r := mustMonth(t, "2025-02")
	txs := []Transaction{
		tx(TypeIncome, 10, time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC)),
	}

	got := DailyBuckets(r, txs)

	require.Len(t, got, 28)
	assert.Equal(t, "2025-02-01", got[0].Date)
	assert.Equal(t, "2025-02-28", got[27].Date)
	assert.Equal(t, int64(10), got[13].TotalIncome)
}

func TestDailyBucketsLeapFebruary(t *testing.T) {
	r := mustMonth(t, "2024-02")

	got := DailyBuckets(r, []Transaction{
		tx(TypeExpense, 5, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, got, 29)
	assert.Equal(t, "2024-02-29", got[28].Date)
	assert.Equal(t, int64(5), got[28].TotalExpense)
}

func TestDailyBucketsScenario(t *testing.T) {
	r := mustMonth(t, "2025-10")
	txs := []Transaction{
		tx(TypeIncome, 500, time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)),
		tx(TypeExpense, 120, time.Date(2025, time.October, 3, 18, 45, 0, 0, time.UTC)),
		tx(TypeTransfer, 50, time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC)),
	}

	got := DailyBuckets(r, txs)
	require.Len(t, got, 31)

	byDate := make(map[string]DayTotals, len(got))
	for _, d := range got {
		byDate[d.Date] = d
	}

	assert.Equal(t, DayTotals{Date: "2025-10-03", TotalIncome: 500, TotalExpense: 120}, byDate["2025-10-03"])
	assert.Equal(t, DayTotals{Date: "2025-10-04"}, byDate["2025-10-04"], "transfer contributes nothing")

	for _, d := range got {
		if d.Date == "2025-10-03" {
			continue
		}
		assert.Zero(t, d.TotalIncome, d.Date)
		assert.Zero(t, d.TotalExpense, d.Date)
	}
}

func TestDailyBucketsOrdering(t *testing.T) {
	r := mustMonth(t, "2025-12")

	got := DailyBuckets(r, nil)

	require.Len(t, got, 31)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Date, got[i].Date)
	}
}

func TestDailyBucketsSkipsOutOfMonth(t *testing.T) {
	r := mustMonth(t, "2025-10")
	txs := []Transaction{
		tx(TypeIncome, 100, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)),
		tx(TypeExpense, 200, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)),
	}

	got := DailyBuckets(r, txs)

	for _, d := range got {
		assert.Zero(t, d.TotalIncome)
		assert.Zero(t, d.TotalExpense)
	}
}
