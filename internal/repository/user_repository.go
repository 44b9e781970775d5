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

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) error
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	u := &domain.User{
		ID:        m.ID,
		GoogleID:  m.GoogleID,
		Email:     m.Email,
		Name:      m.Name.String,
		ImageURL:  m.ImageURL.String,
		Industry:  m.Industry.String,
		Bio:       m.Bio.String,
		Skills:    m.Skills,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Experience.Valid {
		exp := int(m.Experience.Int64)
		u.Experience = &exp
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		u.DeletedAt = &deletedAt
	}
	return u
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	m := &models.User{
		ID:        u.ID,
		GoogleID:  u.GoogleID,
		Email:     u.Email,
		Name:      sql.NullString{String: u.Name, Valid: u.Name != ""},
		ImageURL:  sql.NullString{String: u.ImageURL, Valid: u.ImageURL != ""},
		Industry:  sql.NullString{String: u.Industry, Valid: u.Industry != ""},
		Bio:       sql.NullString{String: u.Bio, Valid: u.Bio != ""},
		Skills:    models.StringSlice(u.Skills),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Experience != nil {
		m.Experience = sql.NullInt64{Int64: int64(*u.Experience), Valid: true}
	}
	if u.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *u.DeletedAt, Valid: true}
	}
	return m
}

// Create inserts a new user row.
func (r *sqlxUserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	model := fromDomainUser(user)
	query := `INSERT INTO users (id, google_id, email, name, image_url, industry, experience, bio, skills, created_at, updated_at)
	          VALUES (:id, :google_id, :email, :name, :image_url, :industry, :experience, :bio, :skills, :created_at, :updated_at)`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByGoogleID retrieves a user by their Google ID.
// Returns (nil, nil) when no matching row exists.
func (r *sqlxUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE google_id = $1 AND deleted_at IS NULL`

	executor := GetExecutor(ctx, r.db)
	if err := executor.GetContext(ctx, &user, query, googleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google_id: %w", err)
	}
	return toDomainUser(&user), nil
}

// GetByID retrieves a user by their internal ID.
// Returns (nil, nil) when no matching row exists.
func (r *sqlxUserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`

	executor := GetExecutor(ctx, r.db)
	if err := executor.GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&user), nil
}

// UpdateProfile applies the onboarding fields to an existing user.
func (r *sqlxUserRepository) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) error {
	query := `UPDATE users SET
	            industry = $1,
	            experience = $2,
	            bio = $3,
	            skills = $4,
	            updated_at = $5
	          WHERE id = $6 AND deleted_at IS NULL`

	var experience sql.NullInt64
	if update.Experience != nil {
		experience = sql.NullInt64{Int64: int64(*update.Experience), Valid: true}
	}

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query,
		update.Industry,
		experience,
		sql.NullString{String: update.Bio, Valid: update.Bio != ""},
		models.StringSlice(update.Skills),
		time.Now(),
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
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
