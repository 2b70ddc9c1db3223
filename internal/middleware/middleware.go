package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"smart-shopping-list/domain"
	"smart-shopping-list/internal/api/presenters"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		APIKeyMiddleware() fiber.Handler
	}

	middleware struct {
		apiKey string
	}
)

func NewMiddleware(apiKey string) Middleware {
	return &middleware{apiKey: apiKey}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080, https://www.harshad.shop, https://harshad.shop",
		AllowHeaders: "Origin, Content-Type, Accept, x-api-key",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	})
}

// APIKeyMiddleware checks the x-api-key header. When no key is configured
// the check is disabled.
func (m *middleware) APIKeyMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.apiKey == "" {
			return c.Next()
		}
		if c.Get("x-api-key") != m.apiKey {
			return presenters.ErrorResponse(c, domain.MessageUnauthorized, domain.ErrInvalidAPIKey)
		}
		return c.Next()
	}
}
