package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/samrat-ghosh-007/Money-Tracker/internal/accounts"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/audit"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/auth"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/categories"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/domain"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/transactions"
)

type AuthHandler struct {
	DB         *pgxpool.Pool
	Secret     []byte
	Accounts   *accounts.Repo
	Categories *categories.Repo
	Txns       *transactions.Repo
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Signup creates the user, seeds the default categories and accounts, and
// returns a token.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	ctx := userContext(c)

	var exists bool
	if err := h.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, body.Email,
	).Scan(&exists); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}
	if exists {
		return fiber.NewError(fiber.StatusBadRequest, "user already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	var userID string
	err = h.DB.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, full_name)
         VALUES ($1, $2, NULLIF($3, ''))
         RETURNING id`,
		body.Email, string(hashed), strings.TrimSpace(body.FullName),
	).Scan(&userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	// Defaults come from static configuration, injected here at creation.
	if err := h.Categories.SeedDefaults(ctx, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not seed categories")
	}
	if err := h.Accounts.SeedDefaults(ctx, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not seed accounts")
	}

	_ = audit.Write(ctx, h.DB, audit.Entry{
		UserID:     &userID,
		Action:     "signup",
		EntityType: "user",
		EntityID:   &userID,
	})

	token, err := auth.GenerateToken(h.Secret, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{ID: userID, Email: body.Email, Token: token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	var (
		userID       string
		passwordHash string
	)

	ctx := userContext(c)
	err := h.DB.QueryRow(ctx,
		`SELECT id, password_hash FROM users WHERE email = $1`,
		strings.TrimSpace(strings.ToLower(body.Email)),
	).Scan(&userID, &passwordHash)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := auth.GenerateToken(h.Secret, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.JSON(authResponse{ID: userID, Email: body.Email, Token: token})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var u domain.User
	err = h.DB.QueryRow(userContext(c),
		`SELECT id::text, email, full_name, created_at, last_seen_at
		 FROM users WHERE id = $1::uuid`,
		userID,
	).Scan(&u.ID, &u.Email, &u.FullName, &u.CreatedAt, &u.LastSeenAt)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return c.JSON(u)
}

// Delete removes the user and everything they own: accounts, transactions
// and categories first, then the user row.
func (h *AuthHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := userContext(c)

	if err := h.Txns.DeleteAllForUser(ctx, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user data")
	}
	if err := h.Categories.DeleteAllForUser(ctx, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user data")
	}
	if err := h.Accounts.DeleteAllForUser(ctx, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user data")
	}
	if _, err := h.DB.Exec(ctx, `DELETE FROM users WHERE id = $1::uuid`, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user")
	}

	_ = audit.Write(ctx, h.DB, audit.Entry{
		Action:     "delete_user",
		EntityType: "user",
		EntityID:   &userID,
	})

	return c.JSON(fiber.Map{"message": "user and all associated data deleted"})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
