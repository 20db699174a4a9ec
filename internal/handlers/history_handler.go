package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumelens/resume-optimizer/internal/models"
)

type HistoryHandler struct{}

func NewHistoryHandler() *HistoryHandler {
	return &HistoryHandler{}
}

// HandleHistory is a permanent stub: nothing is persisted, so the list is
// always empty. It exists to satisfy the client's history code path.
func (h *HistoryHandler) HandleHistory(c *fiber.Ctx) error {
	return c.JSON(models.HistoryResponse{
		Analyses: []models.AnalysisResult{},
	})
}
