package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"careerforge/internal/domain"
	"careerforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// AssessmentRepository defines the interface for assessment data operations.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *domain.Assessment) error
	// ListByUser returns the user's assessments, oldest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Assessment, error)
}

type sqlxAssessmentRepository struct {
	db DBTX
}

// NewSQLXAssessmentRepository creates a new instance of sqlxAssessmentRepository.
func NewSQLXAssessmentRepository(db *sqlx.DB) AssessmentRepository {
	return &sqlxAssessmentRepository{db: db}
}

func toDomainAssessment(m *models.Assessment) *domain.Assessment {
	if m == nil {
		return nil
	}
	return &domain.Assessment{
		ID:              m.ID,
		UserID:          m.UserID,
		QuizScore:       m.QuizScore,
		QuestionResults: m.QuestionResults,
		Category:        m.Category,
		ImprovementTip:  m.ImprovementTip.String,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// Create inserts a new assessment row.
func (r *sqlxAssessmentRepository) Create(ctx context.Context, assessment *domain.Assessment) error {
	now := time.Now()
	assessment.CreatedAt = now
	assessment.UpdatedAt = now

	model := &models.Assessment{
		ID:              assessment.ID,
		UserID:          assessment.UserID,
		QuizScore:       assessment.QuizScore,
		QuestionResults: models.QuestionResultSlice(assessment.QuestionResults),
		Category:        assessment.Category,
		ImprovementTip:  sql.NullString{String: assessment.ImprovementTip, Valid: assessment.ImprovementTip != ""},
		CreatedAt:       assessment.CreatedAt,
		UpdatedAt:       assessment.UpdatedAt,
	}

	query := `INSERT INTO assessments (id, user_id, quiz_score, question_results, category, improvement_tip, created_at, updated_at)
	          VALUES (:id, :user_id, :quiz_score, :question_results, :category, :improvement_tip, :created_at, :updated_at)`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// ListByUser returns the user's assessments ordered by creation time ascending.
func (r *sqlxAssessmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Assessment, error) {
	var rows []models.Assessment
	query := `SELECT * FROM assessments WHERE user_id = $1 ORDER BY created_at ASC`

	executor := GetExecutor(ctx, r.db)
	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}

	assessments := make([]*domain.Assessment, 0, len(rows))
	for i := range rows {
		assessments = append(assessments, toDomainAssessment(&rows[i]))
	}
	return assessments, nil
}
