package transactions

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/samrat-ghosh-007/Money-Tracker/internal/auth"
)

const monthRequiredMsg = "Month query is required (e.g., ?month=2025-10)"

// Store is the persistence surface the handlers need. *Repo implements it.
type Store interface {
	ListByUser(ctx context.Context, userID string, f ListFilter) ([]View, error)
	ListInRange(ctx context.Context, userID string, start, end time.Time) ([]Transaction, error)
	Create(ctx context.Context, t *Transaction) (string, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// List handles GET /api/transactions with optional accountId, type and
// startDate/endDate filters. The date filter only applies when both bounds
// are supplied.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var f ListFilter
	f.AccountID = strings.TrimSpace(c.Query("accountId"))

	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		typ, ok := ParseType(raw)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "type must be income, expense or transfer")
		}
		f.Type = typ
	}

	startRaw := strings.TrimSpace(c.Query("startDate"))
	endRaw := strings.TrimSpace(c.Query("endDate"))
	if startRaw != "" && endRaw != "" {
		start, err := time.Parse("2006-01-02", startRaw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "startDate must be YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", endRaw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "endDate must be YYYY-MM-DD")
		}
		f.StartDate = &start
		f.EndDate = &end
	}

	items, err := h.Store.ListByUser(userContext(c), userID, f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}
	return c.JSON(fiber.Map{"transactions": items})
}

// MonthlySummary handles GET /api/transactions/monthly-summary?month=YYYY-MM.
func (h *Handler) MonthlySummary(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	r, ok := monthFromQuery(c)
	if !ok {
		return nil
	}

	txs, err := h.Store.ListInRange(userContext(c), userID, r.Start, r.End)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}

	return c.JSON(SumMonth(r, txs))
}

// DailySummary handles GET /api/transactions/daily-summary?month=YYYY-MM.
// A month with no transactions returns an empty data array and a message
// instead of the zero-filled table.
func (h *Handler) DailySummary(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	r, ok := monthFromQuery(c)
	if !ok {
		return nil
	}

	txs, err := h.Store.ListInRange(userContext(c), userID, r.Start, r.End)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}

	if len(txs) == 0 {
		return c.JSON(fiber.Map{
			"month":   r.Token,
			"data":    []DayTotals{},
			"message": "No transactions found for this month.",
		})
	}

	return c.JSON(fiber.Map{
		"month": r.Token,
		"data":  DailyBuckets(r, txs),
	})
}

type createRequest struct {
	Type          string  `json:"type"`
	Amount        int64   `json:"amount"`
	Date          string  `json:"date"` // YYYY-MM-DD
	AccountID     *string `json:"accountId"`
	SourceID      *string `json:"sourceId"`
	DestinationID *string `json:"destinationId"`
	FromAccountID *string `json:"fromAccountId"`
	ToAccountID   *string `json:"toAccountId"`
	Note          *string `json:"note"`
}

// Create handles POST /api/transactions.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	typ, ok := ParseType(req.Type)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "type must be income, expense or transfer")
	}
	if req.Amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be >= 0")
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	switch typ {
	case TypeTransfer:
		if req.FromAccountID == nil || req.ToAccountID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "transfer requires fromAccountId and toAccountId")
		}
	default:
		if req.AccountID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "accountId required")
		}
	}

	id, err := h.Store.Create(userContext(c), &Transaction{
		UserID:        userID,
		Type:          typ,
		Amount:        req.Amount,
		Date:          date,
		AccountID:     req.AccountID,
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Note:          req.Note,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// monthFromQuery validates the month parameter before any store access.
// On failure it writes the 400 response itself, keeping this endpoint
// family's {"message": ...} envelope, and returns false.
func monthFromQuery(c *fiber.Ctx) (MonthRange, bool) {
	raw := strings.TrimSpace(c.Query("month"))
	if raw == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": monthRequiredMsg})
		return MonthRange{}, false
	}
	r, err := ParseMonth(raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		return MonthRange{}, false
	}
	return r, true
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
