package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"careerforge/internal/domain"
	"careerforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// InsightRepository defines the interface for industry insight data operations.
type InsightRepository interface {
	GetByIndustry(ctx context.Context, industry string) (*domain.IndustryInsight, error)
	// Create inserts the insight. If another writer created a row for the same
	// industry first, the existing row is returned instead of an error.
	Create(ctx context.Context, insight *domain.IndustryInsight) (*domain.IndustryInsight, error)
}

type sqlxInsightRepository struct {
	db DBTX
}

// NewSQLXInsightRepository creates a new instance of sqlxInsightRepository.
func NewSQLXInsightRepository(db *sqlx.DB) InsightRepository {
	return &sqlxInsightRepository{db: db}
}

func toDomainInsight(m *models.IndustryInsight) *domain.IndustryInsight {
	if m == nil {
		return nil
	}
	return &domain.IndustryInsight{
		ID:                m.ID,
		Industry:          m.Industry,
		SalaryRanges:      m.SalaryRanges,
		GrowthRate:        m.GrowthRate,
		DemandLevel:       domain.DemandLevel(m.DemandLevel),
		TopSkills:         m.TopSkills,
		MarketOutlook:     domain.MarketOutlook(m.MarketOutlook),
		KeyTrends:         m.KeyTrends,
		RecommendedSkills: m.RecommendedSkills,
		NextUpdateAt:      m.NextUpdateAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromDomainInsight(i *domain.IndustryInsight) *models.IndustryInsight {
	if i == nil {
		return nil
	}
	return &models.IndustryInsight{
		ID:                i.ID,
		Industry:          i.Industry,
		SalaryRanges:      models.SalaryRangeSlice(i.SalaryRanges),
		GrowthRate:        i.GrowthRate,
		DemandLevel:       string(i.DemandLevel),
		TopSkills:         models.StringSlice(i.TopSkills),
		MarketOutlook:     string(i.MarketOutlook),
		KeyTrends:         models.StringSlice(i.KeyTrends),
		RecommendedSkills: models.StringSlice(i.RecommendedSkills),
		NextUpdateAt:      i.NextUpdateAt,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

// GetByIndustry retrieves the insight for an industry label.
// Returns (nil, nil) when no matching row exists.
func (r *sqlxInsightRepository) GetByIndustry(ctx context.Context, industry string) (*domain.IndustryInsight, error) {
	var insight models.IndustryInsight
	query := `SELECT * FROM industry_insights WHERE industry = $1`

	executor := GetExecutor(ctx, r.db)
	if err := executor.GetContext(ctx, &insight, query, industry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get insight by industry: %w", err)
	}
	return toDomainInsight(&insight), nil
}

// Create inserts a new insight row. The unique constraint on industry keeps
// concurrent writers from producing two rows; the loser reuses the winner's.
func (r *sqlxInsightRepository) Create(ctx context.Context, insight *domain.IndustryInsight) (*domain.IndustryInsight, error) {
	now := time.Now()
	insight.CreatedAt = now
	insight.UpdatedAt = now

	model := fromDomainInsight(insight)
	// DO NOTHING instead of letting the unique violation surface: a raised
	// error would abort a surrounding transaction and make the refetch fail
	// with SQLSTATE 25P02.
	query := `INSERT INTO industry_insights (id, industry, salary_ranges, growth_rate, demand_level, top_skills, market_outlook, key_trends, recommended_skills, next_update_at, created_at, updated_at)
	          VALUES (:id, :industry, :salary_ranges, :growth_rate, :demand_level, :top_skills, :market_outlook, :key_trends, :recommended_skills, :next_update_at, :created_at, :updated_at)
	          ON CONFLICT (industry) DO NOTHING`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.NamedExecContext(ctx, query, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}
	if affected == 0 {
		existing, err := r.GetByIndustry(ctx, insight.Industry)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("failed to create insight: conflicting row for industry %q disappeared", insight.Industry)
		}
		return existing, nil
	}
	return insight, nil
}
