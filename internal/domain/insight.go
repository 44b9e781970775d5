package domain

import (
	"strings"
	"time"
)

// InsightRefreshInterval is how far out the next scheduled refresh of an
// industry insight is stamped. Insights are not re-generated automatically
// once created; the timestamp is stored for a future refresh job.
const InsightRefreshInterval = 7 * 24 * time.Hour

// DemandLevel classifies hiring demand for an industry.
type DemandLevel string

const (
	DemandHigh   DemandLevel = "HIGH"
	DemandMedium DemandLevel = "MEDIUM"
	DemandLow    DemandLevel = "LOW"
)

// MarketOutlook classifies the overall market direction for an industry.
type MarketOutlook string

const (
	OutlookPositive MarketOutlook = "POSITIVE"
	OutlookNeutral  MarketOutlook = "NEUTRAL"
	OutlookNegative MarketOutlook = "NEGATIVE"
)

// NormalizeDemandLevel maps free-form model output onto the fixed enum,
// case-insensitively. Anything unrecognized becomes MEDIUM.
func NormalizeDemandLevel(value string) DemandLevel {
	switch DemandLevel(strings.ToUpper(strings.TrimSpace(value))) {
	case DemandHigh:
		return DemandHigh
	case DemandLow:
		return DemandLow
	case DemandMedium:
		return DemandMedium
	default:
		return DemandMedium
	}
}

// NormalizeMarketOutlook maps free-form model output onto the fixed enum,
// case-insensitively. Anything unrecognized becomes NEUTRAL.
func NormalizeMarketOutlook(value string) MarketOutlook {
	switch MarketOutlook(strings.ToUpper(strings.TrimSpace(value))) {
	case OutlookPositive:
		return OutlookPositive
	case OutlookNegative:
		return OutlookNegative
	case OutlookNeutral:
		return OutlookNeutral
	default:
		return OutlookNeutral
	}
}

// SalaryRange is one role's compensation band within an industry.
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// IndustryInsight is the persisted market analysis for one industry.
// At most one row exists per industry label.
type IndustryInsight struct {
	ID                string
	Industry          string
	SalaryRanges      []SalaryRange
	GrowthRate        float64
	DemandLevel       DemandLevel
	TopSkills         []string
	MarketOutlook     MarketOutlook
	KeyTrends         []string
	RecommendedSkills []string
	NextUpdateAt      time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// InsightPayload is the generator's output before normalization and
// persistence. Enum fields are raw strings because the model's casing and
// vocabulary are untrusted until normalized.
type InsightPayload struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       string        `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     string        `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

// FallbackInsightPayload is the safe default returned when generation fails.
func FallbackInsightPayload() *InsightPayload {
	return &InsightPayload{
		SalaryRanges:      []SalaryRange{},
		GrowthRate:        0,
		DemandLevel:       string(DemandMedium),
		TopSkills:         []string{},
		MarketOutlook:     string(OutlookNeutral),
		KeyTrends:         []string{"Data not available"},
		RecommendedSkills: []string{},
	}
}

// PlaceholderInsight is returned to users who have not set an industry yet.
// It is never persisted.
func PlaceholderInsight(now time.Time) *IndustryInsight {
	return &IndustryInsight{
		Industry:          "Unknown",
		SalaryRanges:      []SalaryRange{},
		GrowthRate:        0,
		DemandLevel:       DemandMedium,
		TopSkills:         []string{},
		MarketOutlook:     OutlookNeutral,
		KeyTrends:         []string{"Set your industry in your profile to see tailored insights."},
		RecommendedSkills: []string{},
		NextUpdateAt:      now.Add(InsightRefreshInterval),
	}
}
