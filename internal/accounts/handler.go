package accounts

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

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}

	id, err := h.Repo.Insert(userContext(c), userID, req.Name, false)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create account")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch accounts")
	}
	return c.JSON(fiber.Map{"accounts": items})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
