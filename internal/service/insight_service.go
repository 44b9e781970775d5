package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"careerforge/internal/cache"
	"careerforge/internal/config"
	"careerforge/internal/domain"
	"careerforge/internal/dto"
	"careerforge/internal/logger"
	"careerforge/internal/repository"
	"careerforge/internal/util"

	"go.uber.org/zap"
)

const insightCacheTTL = time.Hour

const insightPromptTemplate = `
Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "HIGH" | "MEDIUM" | "LOW",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "POSITIVE" | "NEUTRAL" | "NEGATIVE",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.
`

// InsightService generates and serves industry insights.
type InsightService interface {
	// GenerateInsights produces the insight payload for an industry. It never
	// returns an error: on any failure the safe default payload is returned
	// and recovered reports that the fallback was used.
	GenerateInsights(ctx context.Context, industry string) (payload *domain.InsightPayload, recovered bool)

	// BuildInsight normalizes a payload into a persistable insight row.
	BuildInsight(industry string, payload *domain.InsightPayload, now time.Time) *domain.IndustryInsight

	// GetIndustryInsights resolves the caller's insight, creating the row
	// lazily on first request for the industry.
	GetIndustryInsights(ctx context.Context, userID string) (*dto.InsightResponse, error)
}

type insightService struct {
	userRepo    repository.UserRepository
	insightRepo repository.InsightRepository
	generator   domain.TextGenerator
	cacheStore  domain.Cache
	cfg         *config.Config
}

// NewInsightService creates a new InsightService instance.
func NewInsightService(
	userRepo repository.UserRepository,
	insightRepo repository.InsightRepository,
	generator domain.TextGenerator,
	cacheStore domain.Cache,
	cfg *config.Config,
) InsightService {
	return &insightService{
		userRepo:    userRepo,
		insightRepo: insightRepo,
		generator:   generator,
		cacheStore:  cacheStore,
		cfg:         cfg,
	}
}

// mockInsightPayload is the fixed payload returned in mock mode.
func mockInsightPayload() *domain.InsightPayload {
	return &domain.InsightPayload{
		SalaryRanges: []domain.SalaryRange{
			{
				Role:     "Mid-level Professional",
				Min:      60000,
				Max:      90000,
				Median:   75000,
				Location: "Global",
			},
		},
		GrowthRate:        10,
		DemandLevel:       string(domain.DemandHigh),
		TopSkills:         []string{"Problem Solving", "Communication", "Teamwork"},
		MarketOutlook:     string(domain.OutlookPositive),
		KeyTrends:         []string{"AI Adoption", "Remote Work"},
		RecommendedSkills: []string{"Cloud Basics", "Data Literacy"},
	}
}

// GenerateInsights builds the industry analysis prompt and parses the model
// response. This is the only generation path with a fallback-on-failure
// policy; every other AI call surfaces its error to the caller.
func (s *insightService) GenerateInsights(ctx context.Context, industry string) (*domain.InsightPayload, bool) {
	appLogger := logger.Get()

	if s.cfg.AI.MockMode {
		return mockInsightPayload(), false
	}

	prompt := fmt.Sprintf(insightPromptTemplate, industry)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		appLogger.Error("Insight generation failed, using fallback payload",
			zap.String("industry", industry), zap.Error(err))
		return domain.FallbackInsightPayload(), true
	}

	jsonStr, err := util.ExtractJSONObject(raw)
	if err != nil {
		appLogger.Error("Insight response contained no JSON, using fallback payload",
			zap.String("industry", industry), zap.String("response", raw), zap.Error(err))
		return domain.FallbackInsightPayload(), true
	}

	var payload domain.InsightPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		appLogger.Error("Failed to parse insight JSON, using fallback payload",
			zap.String("industry", industry), zap.Error(err))
		return domain.FallbackInsightPayload(), true
	}

	return &payload, false
}

// BuildInsight normalizes the payload's enum fields and stamps the next
// scheduled refresh one week out.
func (s *insightService) BuildInsight(industry string, payload *domain.InsightPayload, now time.Time) *domain.IndustryInsight {
	return &domain.IndustryInsight{
		ID:                util.NewULID(),
		Industry:          industry,
		SalaryRanges:      payload.SalaryRanges,
		GrowthRate:        payload.GrowthRate,
		DemandLevel:       domain.NormalizeDemandLevel(payload.DemandLevel),
		TopSkills:         payload.TopSkills,
		MarketOutlook:     domain.NormalizeMarketOutlook(payload.MarketOutlook),
		KeyTrends:         payload.KeyTrends,
		RecommendedSkills: payload.RecommendedSkills,
		NextUpdateAt:      now.Add(domain.InsightRefreshInterval),
	}
}

// GetIndustryInsights serves the dashboard. Users without an industry get a
// placeholder without touching the database; otherwise the insight row is
// returned, created lazily on first request. Existing rows are served as-is
// even past their next_update_at.
func (s *insightService) GetIndustryInsights(ctx context.Context, userID string) (*dto.InsightResponse, error) {
	appLogger := logger.Get()

	if s.userRepo == nil || s.insightRepo == nil {
		return nil, domain.NewInternalError("database is not configured", nil)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	if user.Industry == "" {
		return dto.ToInsightResponse(domain.PlaceholderInsight(time.Now())), nil
	}

	if cached := s.getCachedInsight(ctx, user.Industry); cached != nil {
		return cached, nil
	}

	insight, err := s.insightRepo.GetByIndustry(ctx, user.Industry)
	if err != nil {
		return nil, domain.NewInternalError("failed to load industry insight", err)
	}

	if insight == nil {
		payload, recovered := s.GenerateInsights(ctx, user.Industry)
		if recovered {
			appLogger.Warn("Persisting fallback insight payload",
				zap.String("industry", user.Industry))
		}
		insight, err = s.insightRepo.Create(ctx, s.BuildInsight(user.Industry, payload, time.Now()))
		if err != nil {
			return nil, domain.NewInternalError("failed to create industry insight", err)
		}
	}

	resp := dto.ToInsightResponse(insight)
	s.setCachedInsight(ctx, user.Industry, resp)
	return resp, nil
}

func insightCacheKey(industry string) string {
	return cache.GenerateCacheKey("insight", "industry", industry)
}

func (s *insightService) getCachedInsight(ctx context.Context, industry string) *dto.InsightResponse {
	if s.cacheStore == nil {
		return nil
	}

	val, err := s.cacheStore.Get(ctx, insightCacheKey(industry))
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Insight cache read failed", zap.String("industry", industry), zap.Error(err))
		}
		return nil
	}

	var resp dto.InsightResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		logger.Get().Warn("Corrupt insight cache entry", zap.String("industry", industry), zap.Error(err))
		return nil
	}
	return &resp
}

func (s *insightService) setCachedInsight(ctx context.Context, industry string, resp *dto.InsightResponse) {
	if s.cacheStore == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cacheStore.Set(ctx, insightCacheKey(industry), string(data), insightCacheTTL); err != nil {
		logger.Get().Warn("Insight cache write failed", zap.String("industry", industry), zap.Error(err))
	}
}
