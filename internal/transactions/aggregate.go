package transactions

import "sort"

// MonthlyTotals is the income-vs-expense rollup for one month. Profit is
// always TotalIncome - TotalExpense; transfers contribute to neither side.
type MonthlyTotals struct {
	Month        string `json:"month"`
	TotalIncome  int64  `json:"totalIncome"`
	TotalExpense int64  `json:"totalExpense"`
	Profit       int64  `json:"profit"`
}

// DayTotals is one calendar day's rollup inside a daily summary.
type DayTotals struct {
	Date         string `json:"date"` // YYYY-MM-DD
	TotalIncome  int64  `json:"totalIncome"`
	TotalExpense int64  `json:"totalExpense"`
}

// SumMonth folds a month's transactions into a single totals record.
// Transactions outside [Start, End) are skipped.
func SumMonth(r MonthRange, txs []Transaction) MonthlyTotals {
	var income, expense int64
	for _, tx := range txs {
		if !r.Contains(tx.Date) {
			continue
		}
		switch tx.Type {
		case TypeIncome:
			income += tx.Amount
		case TypeExpense:
			expense += tx.Amount
		}
	}
	return MonthlyTotals{
		Month:        r.Token,
		TotalIncome:  income,
		TotalExpense: expense,
		Profit:       income - expense,
	}
}

// DailyBuckets folds a month's transactions into one bucket per calendar day,
// zero-filled, ordered ascending by date key. Transactions whose date key is
// not one of the month's days are skipped.
func DailyBuckets(r MonthRange, txs []Transaction) []DayTotals {
	buckets := make(map[string]*DayTotals, r.Days)
	for day := 1; day <= r.Days; day++ {
		key := r.DayKey(day)
		buckets[key] = &DayTotals{Date: key}
	}

	for _, tx := range txs {
		key := tx.Date.UTC().Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			continue
		}
		switch tx.Type {
		case TypeIncome:
			b.TotalIncome += tx.Amount
		case TypeExpense:
			b.TotalExpense += tx.Amount
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DayTotals, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out
}
