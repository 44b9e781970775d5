package dto

import (
	"time"

	"careerforge/internal/domain"
)

// InsightResponse is the dashboard payload for one industry.
type InsightResponse struct {
	Industry          string               `json:"industry"`
	SalaryRanges      []domain.SalaryRange `json:"salary_ranges"`
	GrowthRate        float64              `json:"growth_rate"`
	DemandLevel       string               `json:"demand_level"`
	TopSkills         []string             `json:"top_skills"`
	MarketOutlook     string               `json:"market_outlook"`
	KeyTrends         []string             `json:"key_trends"`
	RecommendedSkills []string             `json:"recommended_skills"`
	NextUpdateAt      time.Time            `json:"next_update_at"`
}

// ToInsightResponse maps a domain insight onto its response shape.
func ToInsightResponse(i *domain.IndustryInsight) *InsightResponse {
	resp := &InsightResponse{
		Industry:          i.Industry,
		SalaryRanges:      i.SalaryRanges,
		GrowthRate:        i.GrowthRate,
		DemandLevel:       string(i.DemandLevel),
		TopSkills:         i.TopSkills,
		MarketOutlook:     string(i.MarketOutlook),
		KeyTrends:         i.KeyTrends,
		RecommendedSkills: i.RecommendedSkills,
		NextUpdateAt:      i.NextUpdateAt,
	}
	if resp.SalaryRanges == nil {
		resp.SalaryRanges = []domain.SalaryRange{}
	}
	if resp.TopSkills == nil {
		resp.TopSkills = []string{}
	}
	if resp.KeyTrends == nil {
		resp.KeyTrends = []string{}
	}
	if resp.RecommendedSkills == nil {
		resp.RecommendedSkills = []string{}
	}
	return resp
}
