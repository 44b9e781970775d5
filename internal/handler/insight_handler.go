package handler

import (
	"careerforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InsightHandler handles industry insight HTTP requests.
type InsightHandler struct {
	insightService service.InsightService
}

// NewInsightHandler creates a new InsightHandler instance.
func NewInsightHandler(insightService service.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetIndustryInsights serves the dashboard insight for the caller's industry.
// @Summary Get Industry Insights
// @Tags insights
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.InsightResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /insights [get]
func (h *InsightHandler) GetIndustryInsights(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	insights, err := h.insightService.GetIndustryInsights(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(insights)
}
