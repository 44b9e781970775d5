package dto

import (
	"careerforge/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// GoogleUserInfo holds user information obtained from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenResponse represents the response containing access and refresh tokens.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRequest represents the request body for refreshing a token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	Industry   string   `json:"industry,omitempty"`
	Experience *int     `json:"experience,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills"`
}

// UpdateProfileRequest carries the onboarding form submission.
type UpdateProfileRequest struct {
	Industry   string   `json:"industry"`
	Experience *int     `json:"experience"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
}

// UpdateProfileResponse signals whether the profile update committed.
type UpdateProfileResponse struct {
	Success bool `json:"success"`
}

// OnboardingStatusResponse reports whether the caller has set an industry.
type OnboardingStatusResponse struct {
	IsOnboarded bool `json:"is_onboarded"`
}

// ToUserProfileResponse maps a domain user onto its response shape.
func ToUserProfileResponse(u *domain.User) *UserProfileResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return &UserProfileResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		ImageURL:   u.ImageURL,
		Industry:   u.Industry,
		Experience: u.Experience,
		Bio:        u.Bio,
		Skills:     skills,
	}
}
