package validation

import (
	"strings"

	"careerforge/internal/domain"
	"careerforge/internal/dto"

	"github.com/oklog/ulid/v2"
)

const (
	maxBioLength      = 4000
	maxExperienceYrs  = 60
	maxSkillCount     = 50
	maxJobFieldLength = 255
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateCoverLetterRequest validates the cover letter generation request.
// An empty job description must fail before any AI call or database write.
func (v *Validator) ValidateGenerateCoverLetterRequest(req *dto.GenerateCoverLetterRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.JobDescription) == "" {
		errs = append(errs, domain.NewMissingFieldError("job_description"))
	}
	if len(req.JobTitle) > maxJobFieldLength {
		errs = append(errs, domain.NewOutOfRangeError("job_title", len(req.JobTitle), 0, maxJobFieldLength))
	}
	if len(req.CompanyName) > maxJobFieldLength {
		errs = append(errs, domain.NewOutOfRangeError("company_name", len(req.CompanyName), 0, maxJobFieldLength))
	}

	return errs
}

// ValidateUpdateProfileRequest validates the onboarding form submission.
func (v *Validator) ValidateUpdateProfileRequest(req *dto.UpdateProfileRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Industry) == "" {
		errs = append(errs, domain.NewMissingFieldError("industry"))
	}
	if req.Experience != nil && (*req.Experience < 0 || *req.Experience > maxExperienceYrs) {
		errs = append(errs, domain.NewOutOfRangeError("experience", *req.Experience, 0, maxExperienceYrs))
	}
	if len(req.Bio) > maxBioLength {
		errs = append(errs, domain.NewOutOfRangeError("bio", len(req.Bio), 0, maxBioLength))
	}
	if len(req.Skills) > maxSkillCount {
		errs = append(errs, domain.NewOutOfRangeError("skills", len(req.Skills), 0, maxSkillCount))
	}

	return errs
}

// ValidateSaveQuizResultRequest validates a quiz submission.
func (v *Validator) ValidateSaveQuizResultRequest(req *dto.SaveQuizResultRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if len(req.Questions) == 0 {
		errs = append(errs, domain.NewMissingFieldError("questions"))
	}
	if req.Score < 0 || req.Score > 100 {
		errs = append(errs, domain.NewOutOfRangeError("score", int(req.Score), 0, 100))
	}

	return errs
}

// ValidateID validates a resource id path parameter.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errs = append(errs, domain.NewInvalidFormatError(field, id))
	}

	return errs
}

func isValidULID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
