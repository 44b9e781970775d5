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

// CoverLetterRepository defines the interface for cover letter data operations.
// Every read and delete is scoped to the owning user; a row belonging to
// another user behaves exactly like a missing row.
type CoverLetterRepository interface {
	Create(ctx context.Context, letter *domain.CoverLetter) error
	ListByUser(ctx context.Context, userID string) ([]*domain.CoverLetter, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.CoverLetter, error)
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}

type sqlxCoverLetterRepository struct {
	db DBTX
}

// NewSQLXCoverLetterRepository creates a new instance of sqlxCoverLetterRepository.
func NewSQLXCoverLetterRepository(db *sqlx.DB) CoverLetterRepository {
	return &sqlxCoverLetterRepository{db: db}
}

func toDomainCoverLetter(m *models.CoverLetter) *domain.CoverLetter {
	if m == nil {
		return nil
	}
	return &domain.CoverLetter{
		ID:             m.ID,
		UserID:         m.UserID,
		Content:        m.Content,
		JobDescription: m.JobDescription,
		CompanyName:    m.CompanyName,
		JobTitle:       m.JobTitle,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// Create inserts a new cover letter row.
func (r *sqlxCoverLetterRepository) Create(ctx context.Context, letter *domain.CoverLetter) error {
	now := time.Now()
	letter.CreatedAt = now
	letter.UpdatedAt = now

	model := &models.CoverLetter{
		ID:             letter.ID,
		UserID:         letter.UserID,
		Content:        letter.Content,
		JobDescription: letter.JobDescription,
		CompanyName:    letter.CompanyName,
		JobTitle:       letter.JobTitle,
		Status:         letter.Status,
		CreatedAt:      letter.CreatedAt,
		UpdatedAt:      letter.UpdatedAt,
	}

	query := `INSERT INTO cover_letters (id, user_id, content, job_description, company_name, job_title, status, created_at, updated_at)
	          VALUES (:id, :user_id, :content, :job_description, :company_name, :job_title, :status, :created_at, :updated_at)`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create cover letter: %w", err)
	}
	return nil
}

// ListByUser returns the user's cover letters, newest first.
func (r *sqlxCoverLetterRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CoverLetter, error) {
	var rows []models.CoverLetter
	query := `SELECT * FROM cover_letters WHERE user_id = $1 ORDER BY created_at DESC`

	executor := GetExecutor(ctx, r.db)
	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list cover letters: %w", err)
	}

	letters := make([]*domain.CoverLetter, 0, len(rows))
	for i := range rows {
		letters = append(letters, toDomainCoverLetter(&rows[i]))
	}
	return letters, nil
}

// GetByIDAndUser returns the letter matching both id and owner.
// Returns (nil, nil) when no matching row exists.
func (r *sqlxCoverLetterRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.CoverLetter, error) {
	var letter models.CoverLetter
	query := `SELECT * FROM cover_letters WHERE id = $1 AND user_id = $2`

	executor := GetExecutor(ctx, r.db)
	if err := executor.GetContext(ctx, &letter, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cover letter: %w", err)
	}
	return toDomainCoverLetter(&letter), nil
}

// DeleteByIDAndUser deletes the letter matching both id and owner.
// Deleting a row the caller does not own reports sql.ErrNoRows.
func (r *sqlxCoverLetterRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	query := `DELETE FROM cover_letters WHERE id = $1 AND user_id = $2`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cover letter: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
