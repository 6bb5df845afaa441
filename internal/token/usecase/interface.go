// Package usecase orchestrates permission resolution and capability token
// issuance for the secure resource access flow.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

// CapabilityUseCase is the issuance and verification surface used by the HTTP
// layer. Issue resolves the effective permission first and only then mints a
// token; Verify is pure and transport-independent.
type CapabilityUseCase interface {
	// Issue computes the effective permission for (subject, resource) and, if
	// sufficient for the purpose, mints a short-lived capability token.
	// Returns ErrResourceNotFound if the resource vanished, a forbidden error
	// for an insufficient permission, and ErrNotDownloadable when a download
	// token is requested for a non-downloadable resource.
	Issue(
		ctx context.Context,
		subject authzDomain.Subject,
		resourceID uuid.UUID,
		purpose tokenDomain.Purpose,
		now time.Time,
	) (*tokenDomain.IssuedToken, error)

	// Verify validates a presented capability token against the expected
	// resource and purpose at the given instant.
	Verify(
		token string,
		expectedResourceID uuid.UUID,
		expectedPurpose tokenDomain.Purpose,
		now time.Time,
	) (*tokenDomain.VerifiedClaims, error)
}
