package api

import (
	"net/url"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/vulnscan-ai/gui-server/internal/mock"
)

type Handler struct {
	generator *mock.Generator
}

func NewHandler(g *mock.Generator) *Handler {
	return &Handler{generator: g}
}

// MockAPI answers every request under the API namespace. It lifts the
// method, path, query, and body out of the request and hands them to the
// generator; the generator never fails, so the only local error is a body
// that is not valid UTF-8 text.
func (h *Handler) MockAPI(c *fiber.Ctx) error {
	body := c.Body()
	if !utf8.Valid(body) {
		return fiber.NewError(fiber.StatusInternalServerError, "request body is not valid UTF-8")
	}

	// Duplicate query keys keep their order of appearance.
	query := make(url.Values)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		query.Add(string(key), string(value))
	})

	response := h.generator.Generate(c.Method(), c.Path(), query, string(body))
	return c.JSON(response)
}
