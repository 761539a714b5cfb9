package reports

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/samrat-ghosh-007/Money-Tracker/internal/money"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/transactions"
)

// BuildMonthlyStatement renders one month's totals and per-day table to PDF.
// Days with no activity are included at zero, same as the daily summary API.
func BuildMonthlyStatement(totals transactions.MonthlyTotals, days []transactions.DayTotals) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Money Tracker Monthly Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Monthly Statement")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", totals.Month))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total Income: %s", money.FormatMinor(totals.TotalIncome)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total Expense: %s", money.FormatMinor(totals.TotalExpense)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Profit: %s", money.FormatMinor(totals.Profit)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Daily Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(50, 7, "Date")
	pdf.Cell(50, 7, "Income")
	pdf.Cell(50, 7, "Expense")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, d := range days {
		pdf.Cell(50, 7, d.Date)
		pdf.Cell(50, 7, money.FormatMinor(d.TotalIncome))
		pdf.Cell(50, 7, money.FormatMinor(d.TotalExpense))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
