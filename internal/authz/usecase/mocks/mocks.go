// Package mocks provides mock implementations for testing authorization components.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
)

// MockGrantRepository is a mock implementation of GrantRepository for testing.
type MockGrantRepository struct {
	mock.Mock
}

// GetActiveGrant mocks the GetActiveGrant method of GrantRepository.
func (m *MockGrantRepository) GetActiveGrant(
	ctx context.Context,
	granteeID uuid.UUID,
	companyID uuid.UUID,
	now time.Time,
) (*authzDomain.Grant, error) {
	args := m.Called(ctx, granteeID, companyID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authzDomain.Grant), args.Error(1)
}

// MockResourceRepository is a mock implementation of ResourceRepository for testing.
type MockResourceRepository struct {
	mock.Mock
}

// Get mocks the Get method of ResourceRepository.
func (m *MockResourceRepository) Get(
	ctx context.Context,
	resourceID uuid.UUID,
) (*authzDomain.Resource, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authzDomain.Resource), args.Error(1)
}

// MockResolver is a mock implementation of Resolver for testing.
type MockResolver struct {
	mock.Mock
}

// Resolve mocks the Resolve method of Resolver.
func (m *MockResolver) Resolve(
	ctx context.Context,
	subject authzDomain.Subject,
	resourceID uuid.UUID,
	action authzDomain.Action,
	now time.Time,
) (*authzDomain.Decision, error) {
	args := m.Called(ctx, subject, resourceID, action, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authzDomain.Decision), args.Error(1)
}
