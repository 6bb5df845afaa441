// Package mocks provides mock implementations for testing token HTTP handlers.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

// MockCapabilityUseCase is a mock implementation of CapabilityUseCase for testing.
type MockCapabilityUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method of CapabilityUseCase.
func (m *MockCapabilityUseCase) Issue(
	ctx context.Context,
	subject authzDomain.Subject,
	resourceID uuid.UUID,
	purpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.IssuedToken, error) {
	args := m.Called(ctx, subject, resourceID, purpose, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.IssuedToken), args.Error(1)
}

// Verify mocks the Verify method of CapabilityUseCase.
func (m *MockCapabilityUseCase) Verify(
	token string,
	expectedResourceID uuid.UUID,
	expectedPurpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.VerifiedClaims, error) {
	args := m.Called(token, expectedResourceID, expectedPurpose, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.VerifiedClaims), args.Error(1)
}
