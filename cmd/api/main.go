package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samrat-ghosh-007/Money-Tracker/internal/accounts"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/auth"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/categories"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/config"
	apphttp "github.com/samrat-ghosh-007/Money-Tracker/internal/http"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/reports"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/router"
	"github.com/samrat-ghosh-007/Money-Tracker/internal/transactions"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	secret := []byte(cfg.JWTSecret)

	accountsRepo := accounts.NewRepo(pool)
	categoriesRepo := categories.NewRepo(pool)
	txnRepo := transactions.NewRepo(pool)

	r := &router.Router{
		AuthHandler: &apphttp.AuthHandler{
			DB:         pool,
			Secret:     secret,
			Accounts:   accountsRepo,
			Categories: categoriesRepo,
			Txns:       txnRepo,
		},
		TxHandler:         transactions.NewHandler(txnRepo),
		AccountsHandler:   accounts.NewHandler(accountsRepo),
		CategoriesHandler: categories.NewHandler(categoriesRepo),
		ReportsHandler:    reports.NewHandler(txnRepo),
		AuthMW:            auth.Middleware(secret),
		WriteLimiter:      router.RateLimitWrite(cfg.RateLimitTxMax, cfg.RateLimitTxWindow),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
