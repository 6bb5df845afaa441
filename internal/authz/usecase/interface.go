// Package usecase defines business logic interfaces for authorization decisions.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
)

// GrantRepository defines read-only queries over persisted sharing grants.
// Implementations are I/O-bound and may be called concurrently by many
// requests; read consistency is the store's responsibility.
type GrantRepository interface {
	// GetActiveGrant retrieves the grant for (grantee, company) active at now.
	// Returns ErrGrantNotFound when no active grant exists; absence is an
	// expected outcome, never reported as a hard failure.
	GetActiveGrant(
		ctx context.Context,
		granteeID uuid.UUID,
		companyID uuid.UUID,
		now time.Time,
	) (*authzDomain.Grant, error)
}

// ResourceRepository defines read-only queries over resource metadata.
type ResourceRepository interface {
	// Get retrieves the authorization metadata of a resource.
	// Returns ErrResourceNotFound if the resource doesn't exist.
	Get(ctx context.Context, resourceID uuid.UUID) (*authzDomain.Resource, error)
}

// Resolver computes the effective permission for a (subject, resource, action)
// triple at one instant.
type Resolver interface {
	// Resolve combines role capabilities, ownership, active grants, and
	// resource sensitivity into a single decision. The returned Decision is a
	// typed outcome: denials and missing resources are not errors. A non-nil
	// error means the decision could not be computed (store unreachable,
	// configuration invalid).
	Resolve(
		ctx context.Context,
		subject authzDomain.Subject,
		resourceID uuid.UUID,
		action authzDomain.Action,
		now time.Time,
	) (*authzDomain.Decision, error)
}
