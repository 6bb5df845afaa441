// Package mocks provides mock implementations for testing session use cases.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	sessionDomain "github.com/allisson/docvault/internal/session/domain"
	subjectDomain "github.com/allisson/docvault/internal/subject/domain"
)

// MockSubjectRepository is a mock implementation of SubjectRepository for testing.
type MockSubjectRepository struct {
	mock.Mock
}

// Get mocks the Get method of SubjectRepository.
func (m *MockSubjectRepository) Get(ctx context.Context, id uuid.UUID) (*subjectDomain.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subjectDomain.Subject), args.Error(1)
}

// GetByEmail mocks the GetByEmail method of SubjectRepository.
func (m *MockSubjectRepository) GetByEmail(ctx context.Context, email string) (*subjectDomain.Subject, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subjectDomain.Subject), args.Error(1)
}

// MockSessionUseCase is a mock implementation of SessionUseCase for testing.
type MockSessionUseCase struct {
	mock.Mock
}

// Login mocks the Login method of SessionUseCase.
func (m *MockSessionUseCase) Login(
	ctx context.Context,
	email, password string,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	args := m.Called(ctx, email, password, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.TokenPair), args.Error(1)
}

// Rotate mocks the Rotate method of SessionUseCase.
func (m *MockSessionUseCase) Rotate(
	ctx context.Context,
	refreshToken string,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	args := m.Called(ctx, refreshToken, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.TokenPair), args.Error(1)
}
