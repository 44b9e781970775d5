package handler

import (
	"careerforge/internal/domain"
	"careerforge/internal/dto"
	"careerforge/internal/middleware"
	"careerforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user profile HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// callerID extracts the authenticated user's id set by the auth middleware.
func callerID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthorizedError("Unauthorized")
	}
	return userID, nil
}

// GetMyProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateMyProfile applies the onboarding form to the caller's profile.
// @Summary Update My Profile
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} dto.UpdateProfileResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.userService.UpdateProfile(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetOnboardingStatus reports whether the caller has completed onboarding.
// Unauthenticated callers get {"is_onboarded": false}, never an error,
// because this check gates a client-side redirect.
// @Summary Get Onboarding Status
// @Tags users
// @Produce json
// @Success 200 {object} dto.OnboardingStatusResponse
// @Router /users/me/onboarding [get]
func (h *UserHandler) GetOnboardingStatus(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	return c.JSON(h.userService.GetOnboardingStatus(c.Context(), userID))
}
