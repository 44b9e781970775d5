package handler

import (
	"careerforge/internal/domain"
	"careerforge/internal/dto"
	"careerforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CoverLetterHandler handles cover letter HTTP requests.
type CoverLetterHandler struct {
	letterService service.CoverLetterService
}

// NewCoverLetterHandler creates a new CoverLetterHandler instance.
func NewCoverLetterHandler(letterService service.CoverLetterService) *CoverLetterHandler {
	return &CoverLetterHandler{letterService: letterService}
}

// Generate creates a new cover letter for a job posting.
// @Summary Generate a cover letter
// @Tags cover-letters
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 201 {object} dto.CoverLetterResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /cover-letters [post]
func (h *CoverLetterHandler) Generate(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.GenerateCoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	letter, err := h.letterService.Generate(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(letter)
}

// List returns the caller's cover letters, newest first.
// @Summary List cover letters
// @Tags cover-letters
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.CoverLetterListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /cover-letters [get]
func (h *CoverLetterHandler) List(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	letters, err := h.letterService.List(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(letters)
}

// Get returns a single cover letter owned by the caller.
// @Summary Get a cover letter
// @Tags cover-letters
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Cover letter ID"
// @Success 200 {object} dto.CoverLetterResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /cover-letters/{id} [get]
func (h *CoverLetterHandler) Get(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	letter, err := h.letterService.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(letter)
}

// Delete removes a cover letter owned by the caller.
// @Summary Delete a cover letter
// @Tags cover-letters
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Cover letter ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /cover-letters/{id} [delete]
func (h *CoverLetterHandler) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.letterService.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "cover letter deleted"})
}
