// Package service implements capability token signing and verification.
package service

import (
	"time"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

// CapabilitySigner mints and verifies capability tokens. Both operations are
// pure, stateless, CPU-only signing work over an immutable key and may run
// fully in parallel.
type CapabilitySigner interface {
	// Issue mints a signed token scoped to one resource and one purpose, with
	// a fresh random nonce. The TTL depends on the purpose: preview windows
	// are sized for a single render, download windows for one transfer
	// attempt. No storage write happens.
	Issue(
		subjectID uuid.UUID,
		resourceID uuid.UUID,
		purpose tokenDomain.Purpose,
		now time.Time,
	) (*tokenDomain.IssuedToken, error)

	// Verify validates a presented token: signature over the full claim set,
	// expiry (strict, now must be before expiresAt), resource match, and
	// purpose match. Each check is necessary; the implementation
	// short-circuits on the first failure.
	Verify(
		token string,
		expectedResourceID uuid.UUID,
		expectedPurpose tokenDomain.Purpose,
		now time.Time,
	) (*tokenDomain.VerifiedClaims, error)
}
