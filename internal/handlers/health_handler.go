package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	apiKeyConfigured bool
}

func NewHealthHandler(apiKeyConfigured bool) *HealthHandler {
	return &HealthHandler{
		apiKeyConfigured: apiKeyConfigured,
	}
}

// HandleHealth reports process-local readiness only; it never calls the AI
// backend. The "openai_connected" field name is kept from the original API
// contract so existing clients keep working.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":           "healthy",
		"openai_connected": h.apiKeyConfigured,
	})
}
