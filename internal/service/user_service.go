package service

import (
	"context"
	"time"

	"careerforge/internal/config"
	"careerforge/internal/domain"
	"careerforge/internal/dto"
	"careerforge/internal/logger"
	"careerforge/internal/repository"
	"careerforge/internal/util"
	"careerforge/internal/validation"

	"go.uber.org/zap"
)

// UserService manages local user rows and profile updates.
type UserService interface {
	// SyncUser upserts the local user for an externally authenticated
	// identity. It degrades to (nil, nil) instead of failing so callers can
	// render a signed-out-equivalent state.
	SyncUser(ctx context.Context, identity *domain.ExternalIdentity) (*domain.User, error)

	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)

	// GetOnboardingStatus never returns an error; any internal failure
	// reports "not onboarded" because this check gates a redirect.
	GetOnboardingStatus(ctx context.Context, userID string) *dto.OnboardingStatusResponse
}

type userService struct {
	userRepo       repository.UserRepository
	insightRepo    repository.InsightRepository
	insightService InsightService
	txManager      domain.TransactionManager
	cacheStore     domain.Cache
	cfg            *config.Config
	validator      *validation.Validator
}

// NewUserService creates a new UserService instance.
func NewUserService(
	userRepo repository.UserRepository,
	insightRepo repository.InsightRepository,
	insightService InsightService,
	txManager domain.TransactionManager,
	cacheStore domain.Cache,
	cfg *config.Config,
) UserService {
	return &userService{
		userRepo:       userRepo,
		insightRepo:    insightRepo,
		insightService: insightService,
		txManager:      txManager,
		cacheStore:     cacheStore,
		cfg:            cfg,
		validator:      validation.NewValidator(),
	}
}

// SyncUser returns the local row for the identity, creating one on first
// sight. Repeated calls with the same identity return the same row without
// a second create. Lookup and create failures are logged, not propagated.
func (s *userService) SyncUser(ctx context.Context, identity *domain.ExternalIdentity) (*domain.User, error) {
	appLogger := logger.Get()

	if identity == nil || identity.ID == "" {
		return nil, nil
	}

	if s.userRepo == nil {
		appLogger.Warn("SyncUser: database is not configured, skipping user sync")
		return nil, nil
	}

	existing, err := s.userRepo.GetByGoogleID(ctx, identity.ID)
	if err != nil {
		appLogger.Error("SyncUser: failed to look up user", zap.Error(err))
		return nil, nil
	}
	if existing != nil {
		return existing, nil
	}

	user := &domain.User{
		ID:       util.NewULID(),
		GoogleID: identity.ID,
		Email:    identity.Email,
		Name:     identity.DisplayName(),
		ImageURL: identity.Picture,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		appLogger.Error("SyncUser: failed to create user", zap.Error(err))
		return nil, nil
	}

	appLogger.Info("New user registered", zap.String("userID", user.ID))
	return user, nil
}

// GetProfile returns the caller's profile.
func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	if s.userRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	return dto.ToUserProfileResponse(user), nil
}

// UpdateProfile applies the onboarding fields and ensures an insight row
// exists for the chosen industry. Insight generation happens before the
// transaction opens so no external call runs while it is held; the
// transaction then covers exactly the insight insert and the user update.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	appLogger := logger.Get()

	if s.userRepo == nil || s.insightRepo == nil || s.txManager == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	if errs := s.validator.ValidateUpdateProfileRequest(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	existingInsight, err := s.insightRepo.GetByIndustry(ctx, req.Industry)
	if err != nil {
		return nil, domain.NewInternalError("failed to load industry insight", err)
	}

	var newInsight *domain.IndustryInsight
	if existingInsight == nil {
		payload, recovered := s.insightService.GenerateInsights(ctx, req.Industry)
		if recovered {
			appLogger.Warn("Insight generation fell back to default payload during profile update",
				zap.String("industry", req.Industry))
		}
		newInsight = s.insightService.BuildInsight(req.Industry, payload, time.Now())
	}

	update := &domain.ProfileUpdate{
		Industry:   req.Industry,
		Experience: req.Experience,
		Bio:        req.Bio,
		Skills:     req.Skills,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if newInsight != nil {
			if _, err := s.insightRepo.Create(txCtx, newInsight); err != nil {
				return err
			}
		}
		return s.userRepo.UpdateProfile(txCtx, user.ID, update)
	})
	if err != nil {
		appLogger.Error("Profile update transaction failed",
			zap.String("userID", userID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to update profile", err)
	}

	s.invalidateDashboard(ctx, req.Industry)

	return &dto.UpdateProfileResponse{Success: true}, nil
}

// invalidateDashboard drops the cached insight for the industry so the next
// dashboard read sees the committed row.
func (s *userService) invalidateDashboard(ctx context.Context, industry string) {
	if s.cacheStore == nil {
		return
	}
	if err := s.cacheStore.Delete(ctx, insightCacheKey(industry)); err != nil {
		logger.Get().Warn("Dashboard cache invalidation failed",
			zap.String("industry", industry), zap.Error(err))
	}
}

// GetOnboardingStatus reports whether the caller has set an industry.
func (s *userService) GetOnboardingStatus(ctx context.Context, userID string) *dto.OnboardingStatusResponse {
	notOnboarded := &dto.OnboardingStatusResponse{IsOnboarded: false}

	if userID == "" || s.userRepo == nil {
		return notOnboarded
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Get().Error("Onboarding check failed", zap.String("userID", userID), zap.Error(err))
		return notOnboarded
	}

	return &dto.OnboardingStatusResponse{IsOnboarded: user.IsOnboarded()}
}
