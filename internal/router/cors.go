package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware configures CORS from the allowed-origin setting (defaults
// to *).
func CorsMiddleware(origin string) fiber.Handler {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		origin = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: false,
	})
}
