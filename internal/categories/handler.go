package categories

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/samrat-ghosh-007/Money-Tracker/internal/auth"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

// List handles GET /api/categories with an optional kind filter.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var kind Kind
	if raw := strings.TrimSpace(c.Query("kind")); raw != "" {
		switch Kind(strings.ToLower(raw)) {
		case KindIncome:
			kind = KindIncome
		case KindExpense:
			kind = KindExpense
		default:
			return fiber.NewError(fiber.StatusBadRequest, "kind must be income or expense")
		}
	}

	items, err := h.Repo.ListByUser(userContext(c), userID, kind)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch categories")
	}
	return c.JSON(fiber.Map{"categories": items})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
