package service

import (
	"context"
	"time"

	"careerforge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the repository and port interfaces the services
// depend on.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) error {
	args := m.Called(ctx, userID, update)
	return args.Error(0)
}

type MockInsightRepository struct {
	mock.Mock
}

func (m *MockInsightRepository) GetByIndustry(ctx context.Context, industry string) (*domain.IndustryInsight, error) {
	args := m.Called(ctx, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndustryInsight), args.Error(1)
}

func (m *MockInsightRepository) Create(ctx context.Context, insight *domain.IndustryInsight) (*domain.IndustryInsight, error) {
	args := m.Called(ctx, insight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndustryInsight), args.Error(1)
}

type MockCoverLetterRepository struct {
	mock.Mock
}

func (m *MockCoverLetterRepository) Create(ctx context.Context, letter *domain.CoverLetter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}

func (m *MockCoverLetterRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CoverLetter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CoverLetter), args.Error(1)
}

func (m *MockCoverLetterRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.CoverLetter, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoverLetter), args.Error(1)
}

func (m *MockCoverLetterRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *domain.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Assessment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Assessment), args.Error(1)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTransactionManager runs the callback directly without a real
// transaction so repository mocks see the same context.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
