package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - the dashboard API is read-only, so only GET/HEAD/OPTIONS are allowed.
func CORS(allowOrigins string) fiber.Handler {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  "GET,HEAD,OPTIONS",
		AllowHeaders:  "Content-Type,Accept,Accept-Language",
		ExposeHeaders: "X-Request-ID,Content-Disposition",
	})
}
