package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CapabilityClaims is the signed claim set of a capability token. The token is
// entirely self-describing: nothing is persisted server-side. The registered
// ID claim carries a random nonce to prevent precomputation and guessing.
type CapabilityClaims struct {
	ResourceID string  `json:"rid"`
	Purpose    Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// IssuedToken is the issuance result handed back to the client: the compact
// signed token string and its expiry instant.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// VerifiedClaims is the validated claim set returned by the verifier after
// all checks pass.
type VerifiedClaims struct {
	SubjectID  uuid.UUID
	ResourceID uuid.UUID
	Purpose    Purpose
	Nonce      string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}
