package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vulnscan-ai/gui-server/internal/mock"
)

func SetupRoutes(app *fiber.App, g *mock.Generator, docRoot string) {
	h := NewHandler(g)

	app.Use(corsHeaders)

	app.All("/api/*", h.MockAPI)

	app.Static("/", docRoot)
}

// corsHeaders stamps the CORS contract onto every response and answers
// preflight requests ahead of all other routing: 200, headers only, empty
// body.
func corsHeaders(c *fiber.Ctx) error {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Method() == fiber.MethodOptions {
		c.Status(fiber.StatusOK)
		return nil
	}
	return c.Next()
}

// ErrorHandler is the single request-level error boundary. Failures on API
// paths surface as plain-text responses prefixed "API Error: "; everything
// else keeps fiber's default rendering, including the 404 for unmatched
// non-API routes. No error escapes to crash the listener.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString("API Error: " + err.Error())
	}
	return fiber.DefaultErrorHandler(c, err)
}
