package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"careerforge/internal/config"
	"careerforge/internal/domain"
	"careerforge/internal/dto"
	"careerforge/internal/logger"
	"careerforge/internal/repository"
	"careerforge/internal/util"
	"careerforge/internal/validation"

	"go.uber.org/zap"
)

const bioExcerptLength = 300

// CoverLetterService generates and manages cover letters.
type CoverLetterService interface {
	Generate(ctx context.Context, userID string, req *dto.GenerateCoverLetterRequest) (*dto.CoverLetterResponse, error)
	List(ctx context.Context, userID string) (*dto.CoverLetterListResponse, error)
	Get(ctx context.Context, userID, letterID string) (*dto.CoverLetterResponse, error)
	Delete(ctx context.Context, userID, letterID string) error
}

type coverLetterService struct {
	userRepo   repository.UserRepository
	letterRepo repository.CoverLetterRepository
	generator  domain.TextGenerator
	validator  *validation.Validator
	cfg        *config.Config
}

// NewCoverLetterService creates a new CoverLetterService instance.
func NewCoverLetterService(
	userRepo repository.UserRepository,
	letterRepo repository.CoverLetterRepository,
	generator domain.TextGenerator,
	cfg *config.Config,
) CoverLetterService {
	return &coverLetterService{
		userRepo:   userRepo,
		letterRepo: letterRepo,
		generator:  generator,
		validator:  validation.NewValidator(),
		cfg:        cfg,
	}
}

// isQuotaExceeded reports whether the provider rejected the call for rate
// limiting. The provider SDK does not expose a stable typed error for this,
// so the status code is matched in the message.
func isQuotaExceeded(err error) bool {
	return err != nil && strings.Contains(err.Error(), "429")
}

func buildCoverLetterPrompt(user *domain.User, req *dto.GenerateCoverLetterRequest) string {
	experience := ""
	if user.Experience != nil {
		experience = fmt.Sprintf("%d", *user.Experience)
	}

	bio := user.Bio
	if runes := []rune(bio); len(runes) > bioExcerptLength {
		bio = string(runes[:bioExcerptLength])
	}

	return fmt.Sprintf(`
Write a professional cover letter for a %s position at %s.

About the candidate:
- Industry: %s
- Years of Experience: %s
- Skills: %s
- Professional Background: %s

Job Description:
%s

Keep it under 400 words.
`, req.JobTitle, req.CompanyName, user.Industry, experience, strings.Join(user.Skills, ", "), bio, req.JobDescription)
}

func mockCoverLetterContent(user *domain.User, req *dto.GenerateCoverLetterRequest) string {
	name := user.Name
	if name == "" {
		name = "Your Name"
	}
	return fmt.Sprintf(`Dear Hiring Manager,

I am excited to apply for the %s position at %s. I bring relevant experience in %s along with skills such as %s, and a track record of delivering high-quality results.

Thank you for your time and consideration.

This cover letter was generated in mock mode so you can test the app without calling the real AI API.

Best regards,
%s`, req.JobTitle, req.CompanyName, user.Industry, strings.Join(user.Skills, ", "), name)
}

// Generate produces a cover letter for the given job posting and persists it
// with status "completed". No retry is attempted on failure.
func (s *coverLetterService) Generate(ctx context.Context, userID string, req *dto.GenerateCoverLetterRequest) (*dto.CoverLetterResponse, error) {
	if s.userRepo == nil || s.letterRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	// Validation runs before any AI call or database write.
	if errs := s.validator.ValidateGenerateCoverLetterRequest(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	var content string
	if s.cfg.AI.MockMode {
		content = mockCoverLetterContent(user, req)
	} else {
		content, err = s.generator.Generate(ctx, buildCoverLetterPrompt(user, req))
		if err != nil {
			if isQuotaExceeded(err) {
				return nil, domain.NewQuotaExceededError(err)
			}
			logger.Get().Error("Cover letter generation failed", zap.String("userID", userID), zap.Error(err))
			return nil, domain.NewAIServiceError("Failed to generate cover letter. Please try again in a minute.", err)
		}
	}

	letter := &domain.CoverLetter{
		ID:             util.NewULID(),
		UserID:         user.ID,
		Content:        content,
		JobDescription: req.JobDescription,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		Status:         domain.CoverLetterStatusCompleted,
	}

	if err := s.letterRepo.Create(ctx, letter); err != nil {
		return nil, domain.NewInternalError("failed to save cover letter", err)
	}

	return dto.ToCoverLetterResponse(letter), nil
}

// List returns the caller's cover letters, newest first.
func (s *coverLetterService) List(ctx context.Context, userID string) (*dto.CoverLetterListResponse, error) {
	if s.userRepo == nil || s.letterRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	letters, err := s.letterRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list cover letters", err)
	}
	return dto.ToCoverLetterListResponse(letters), nil
}

// Get returns a single letter owned by the caller.
func (s *coverLetterService) Get(ctx context.Context, userID, letterID string) (*dto.CoverLetterResponse, error) {
	if s.userRepo == nil || s.letterRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	if errs := s.validator.ValidateID("id", letterID); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	letter, err := s.letterRepo.GetByIDAndUser(ctx, letterID, user.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load cover letter", err)
	}
	if letter == nil {
		return nil, domain.NewNotFoundError("Cover letter not found")
	}
	return dto.ToCoverLetterResponse(letter), nil
}

// Delete removes a letter owned by the caller. A letter owned by another
// user is indistinguishable from a missing one.
func (s *coverLetterService) Delete(ctx context.Context, userID, letterID string) error {
	if s.userRepo == nil || s.letterRepo == nil {
		return domain.NewInternalError("database is not configured", nil)
	}

	if errs := s.validator.ValidateID("id", letterID); len(errs) > 0 {
		return errs
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return domain.NewNotFoundError("User not found")
	}

	if err := s.letterRepo.DeleteByIDAndUser(ctx, letterID, user.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("Cover letter not found")
		}
		return domain.NewInternalError("failed to delete cover letter", err)
	}
	return nil
}
