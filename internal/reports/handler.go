package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/samrat-ghosh-007/Money-Tracker/internal/auth"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/transactions"
)

type Handler struct {
	Store transactions.Store
}

func NewHandler(store transactions.Store) *Handler {
	return &Handler{Store: store}
}

// MonthlyStatement handles GET /api/reports/monthly-statement?month=YYYY-MM
// and responds with a PDF.
func (h *Handler) MonthlyStatement(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	raw := strings.TrimSpace(c.Query("month"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Month query is required (e.g., ?month=2025-10)"})
	}
	r, err := transactions.ParseMonth(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}

	txs, err := h.Store.ListInRange(ctx, userID, r.Start, r.End)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}

	pdfBytes, err := BuildMonthlyStatement(transactions.SumMonth(r, txs), transactions.DailyBuckets(r, txs))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build statement")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="statement-%s.pdf"`, r.Token))
	return c.Send(pdfBytes)
}
