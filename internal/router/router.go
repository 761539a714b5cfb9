package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samrat-ghosh-007/Money-Tracker/internal/accounts"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/categories"
	handlers "github.com/samrat-ghosh-007/Money-Tracker/internal/http"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/reports"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/transactions"
)

type Router struct {
	AuthHandler       *handlers.AuthHandler
	TxHandler         *transactions.Handler
	AccountsHandler   *accounts.Handler
	CategoriesHandler *categories.Handler
	ReportsHandler    *reports.Handler
	AuthMW            fiber.Handler
	WriteLimiter      fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Post("/api/auth/signup", RateLimitAuth(), r.AuthHandler.Signup)
	app.Post("/api/auth/login", RateLimitAuth(), r.AuthHandler.Login)
	app.Get("/api/me", r.AuthMW, r.AuthHandler.Me)
	app.Delete("/api/me", r.AuthMW, r.AuthHandler.Delete)

	app.Get("/api/transactions", r.AuthMW, r.TxHandler.List)
	app.Get("/api/transactions/monthly-summary", r.AuthMW, r.TxHandler.MonthlySummary)
	app.Get("/api/transactions/daily-summary", r.AuthMW, r.TxHandler.DailySummary)
	writeLimiter := r.WriteLimiter
	if writeLimiter == nil {
		writeLimiter = RateLimitWrite(0, 0)
	}
	app.Post("/api/transactions", writeLimiter, r.AuthMW, r.TxHandler.Create)

	app.Post("/api/accounts", r.AuthMW, r.AccountsHandler.Create)
	app.Get("/api/accounts", r.AuthMW, r.AccountsHandler.List)

	app.Get("/api/categories", r.AuthMW, r.CategoriesHandler.List)

	app.Get("/api/reports/monthly-statement", r.AuthMW, r.ReportsHandler.MonthlyStatement)
}
