package handler

import (
	"careerforge/internal/domain"
	"careerforge/internal/dto"
	"careerforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler handles interview preparation HTTP requests.
type InterviewHandler struct {
	interviewService service.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler instance.
func NewInterviewHandler(interviewService service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

// GenerateQuiz produces a technical quiz for the caller.
// @Summary Generate an interview quiz
// @Tags interview
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.QuizResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /interview/quiz [get]
func (h *InterviewHandler) GenerateQuiz(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	quiz, err := h.interviewService.GenerateQuiz(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// SaveQuizResult grades and persists a quiz submission.
// @Summary Save a quiz result
// @Tags interview
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 201 {object} dto.AssessmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /interview/assessments [post]
func (h *InterviewHandler) SaveQuizResult(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.SaveQuizResultRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	assessment, err := h.interviewService.SaveQuizResult(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(assessment)
}

// ListAssessments returns the caller's quiz history, oldest first.
// @Summary List assessments
// @Tags interview
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.AssessmentListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /interview/assessments [get]
func (h *InterviewHandler) ListAssessments(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	assessments, err := h.interviewService.ListAssessments(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(assessments)
}
