// Package mocks provides mock implementations for testing session components.
package mocks

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	sessionDomain "github.com/allisson/docvault/internal/session/domain"
)

// MockSessionRotator is a mock implementation of SessionRotator for testing.
type MockSessionRotator struct {
	mock.Mock
}

// IssuePair mocks the IssuePair method of SessionRotator.
func (m *MockSessionRotator) IssuePair(
	subjectID uuid.UUID,
	role authzDomain.Role,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	args := m.Called(subjectID, role, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.TokenPair), args.Error(1)
}

// ParseRefresh mocks the ParseRefresh method of SessionRotator.
func (m *MockSessionRotator) ParseRefresh(token string, now time.Time) (uuid.UUID, error) {
	args := m.Called(token, now)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// ParseAccess mocks the ParseAccess method of SessionRotator.
func (m *MockSessionRotator) ParseAccess(token string, now time.Time) (*authzDomain.Subject, error) {
	args := m.Called(token, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authzDomain.Subject), args.Error(1)
}
