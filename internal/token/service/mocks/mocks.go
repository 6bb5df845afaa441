// Package mocks provides mock implementations for testing capability token components.
package mocks

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

// MockCapabilitySigner is a mock implementation of CapabilitySigner for testing.
type MockCapabilitySigner struct {
	mock.Mock
}

// Issue mocks the Issue method of CapabilitySigner.
func (m *MockCapabilitySigner) Issue(
	subjectID uuid.UUID,
	resourceID uuid.UUID,
	purpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.IssuedToken, error) {
	args := m.Called(subjectID, resourceID, purpose, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.IssuedToken), args.Error(1)
}

// Verify mocks the Verify method of CapabilitySigner.
func (m *MockCapabilitySigner) Verify(
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
