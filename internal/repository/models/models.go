package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table.
type User struct {
	ID         string         `db:"id"` // ULID
	GoogleID   string         `db:"google_id"`
	Email      string         `db:"email"`
	Name       sql.NullString `db:"name"`
	ImageURL   sql.NullString `db:"image_url"`
	Industry   sql.NullString `db:"industry"`
	Experience sql.NullInt64  `db:"experience"`
	Bio        sql.NullString `db:"bio"`
	Skills     StringSlice    `db:"skills"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	DeletedAt  sql.NullTime   `db:"deleted_at"`
}

// IndustryInsight represents a row in the industry_insights table.
// The industry label carries a unique constraint.
type IndustryInsight struct {
	ID                string           `db:"id"` // ULID
	Industry          string           `db:"industry"`
	SalaryRanges      SalaryRangeSlice `db:"salary_ranges"`
	GrowthRate        float64          `db:"growth_rate"`
	DemandLevel       string           `db:"demand_level"`
	TopSkills         StringSlice      `db:"top_skills"`
	MarketOutlook     string           `db:"market_outlook"`
	KeyTrends         StringSlice      `db:"key_trends"`
	RecommendedSkills StringSlice      `db:"recommended_skills"`
	NextUpdateAt      time.Time        `db:"next_update_at"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}

// CoverLetter represents a row in the cover_letters table.
type CoverLetter struct {
	ID             string    `db:"id"` // ULID
	UserID         string    `db:"user_id"`
	Content        string    `db:"content"`
	JobDescription string    `db:"job_description"`
	CompanyName    string    `db:"company_name"`
	JobTitle       string    `db:"job_title"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Assessment represents a row in the assessments table.
type Assessment struct {
	ID              string              `db:"id"` // ULID
	UserID          string              `db:"user_id"`
	QuizScore       float64             `db:"quiz_score"`
	QuestionResults QuestionResultSlice `db:"question_results"`
	Category        string              `db:"category"`
	ImprovementTip  sql.NullString      `db:"improvement_tip"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}
