package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"careerforge/internal/domain"
	"careerforge/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func userColumns() []string {
	return []string{"id", "google_id", "email", "name", "image_url", "industry", "experience", "bio", "skills", "created_at", "updated_at", "deleted_at"}
}

// --- Tests for Converter Functions ---

func TestToDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelUser := &models.User{
		ID:         "user1",
		GoogleID:   "google123",
		Email:      "test@example.com",
		Name:       sql.NullString{String: "Test User", Valid: true},
		ImageURL:   sql.NullString{String: "http://example.com/pic.jpg", Valid: true},
		Industry:   sql.NullString{String: "tech-software", Valid: true},
		Experience: sql.NullInt64{Int64: 5, Valid: true},
		Bio:        sql.NullString{String: "A short bio", Valid: true},
		Skills:     models.StringSlice{"Go", "SQL"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	domainUser := toDomainUser(modelUser)
	assert.NotNil(t, domainUser)
	assert.Equal(t, modelUser.ID, domainUser.ID)
	assert.Equal(t, modelUser.GoogleID, domainUser.GoogleID)
	assert.Equal(t, modelUser.Email, domainUser.Email)
	assert.Equal(t, "Test User", domainUser.Name)
	assert.Equal(t, "tech-software", domainUser.Industry)
	assert.NotNil(t, domainUser.Experience)
	assert.Equal(t, 5, *domainUser.Experience)
	assert.Equal(t, []string{"Go", "SQL"}, domainUser.Skills)
	assert.Nil(t, domainUser.DeletedAt)

	// Null optional fields come back as zero values
	modelUser.Name.Valid = false
	modelUser.Industry.Valid = false
	modelUser.Experience.Valid = false
	domainUser = toDomainUser(modelUser)
	assert.Equal(t, "", domainUser.Name)
	assert.Equal(t, "", domainUser.Industry)
	assert.Nil(t, domainUser.Experience)

	assert.Nil(t, toDomainUser(nil))
}

func TestFromDomainUser(t *testing.T) {
	exp := 3
	domainUser := &domain.User{
		ID:         "user1",
		GoogleID:   "google123",
		Email:      "test@example.com",
		Name:       "Test User",
		Industry:   "finance-banking",
		Experience: &exp,
		Skills:     []string{"Excel"},
	}

	modelUser := fromDomainUser(domainUser)
	assert.NotNil(t, modelUser)
	assert.True(t, modelUser.Name.Valid)
	assert.True(t, modelUser.Industry.Valid)
	assert.True(t, modelUser.Experience.Valid)
	assert.Equal(t, int64(3), modelUser.Experience.Int64)

	// Empty strings map to NULL
	domainUser.Name = ""
	domainUser.Industry = ""
	domainUser.Experience = nil
	modelUser = fromDomainUser(domainUser)
	assert.False(t, modelUser.Name.Valid)
	assert.False(t, modelUser.Industry.Valid)
	assert.False(t, modelUser.Experience.Valid)

	assert.Nil(t, fromDomainUser(nil))
}

// --- Tests for Repository Methods ---

func TestSQLXUserRepository_GetByID_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	userID := "01HYUSER00000000000000TEST"
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(userID, "google-id", "test@example.com", "Test User", nil, "tech-software", 5, nil, `["Go"]`, now, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`)).
		WithArgs(userID).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), userID)

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "tech-software", user.Industry)
	assert.Equal(t, []string{"Go"}, user.Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), "missing")

	// Not found is (nil, nil), not an error
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetByGoogleID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE google_id = $1 AND deleted_at IS NULL`)).
		WithArgs("unknown-google-id").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByGoogleID(context.Background(), "unknown-google-id")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_Create_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	domainUser := &domain.User{
		ID:       "01HYUSER00000000000000NEW1",
		GoogleID: "new-google-id",
		Email:    "new@example.com",
		Name:     "New User",
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), domainUser)

	assert.NoError(t, err)
	assert.False(t, domainUser.CreatedAt.IsZero(), "Create stamps timestamps")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_UpdateProfile_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	exp := 4
	update := &domain.ProfileUpdate{
		Industry:   "tech-software",
		Experience: &exp,
		Bio:        "Backend engineer",
		Skills:     []string{"Go", "Postgres"},
	}

	mock.ExpectExec(`UPDATE users SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), "user1", update)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_UpdateProfile_NoRows(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), "missing", &domain.ProfileUpdate{Industry: "tech"})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
