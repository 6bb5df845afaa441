package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/allisson/docvault/internal/errors"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

const capabilityIssuer = "docvault/capability"

// jwtCapabilitySigner implements CapabilitySigner using HS256 JWTs.
// The signing key is immutable after construction; there is no shared mutable
// state, so a single instance is safe for concurrent use.
type jwtCapabilitySigner struct {
	key         []byte
	previewTTL  time.Duration
	downloadTTL time.Duration
}

// Issue mints a capability token for (subject, resource, purpose) at now.
func (s *jwtCapabilitySigner) Issue(
	subjectID uuid.UUID,
	resourceID uuid.UUID,
	purpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.IssuedToken, error) {
	if !purpose.Valid() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown token purpose")
	}

	ttl := s.previewTTL
	if purpose == tokenDomain.PurposeDownload {
		ttl = s.downloadTTL
	}

	now = now.UTC()
	expiresAt := now.Add(ttl)

	claims := tokenDomain.CapabilityClaims{
		ResourceID: resourceID.String(),
		Purpose:    purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    capabilityIssuer,
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign capability token")
	}

	return &tokenDomain.IssuedToken{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify validates signature, expiry, resource scope, and purpose, in that
// order, against the explicitly supplied instant. Claims validation is done
// by hand rather than by the JWT library so the expiry bound stays closed
// (a token checked exactly at expiresAt fails) and each failure mode maps to
// its own error.
func (s *jwtCapabilitySigner) Verify(
	token string,
	expectedResourceID uuid.UUID,
	expectedPurpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.VerifiedClaims, error) {
	var claims tokenDomain.CapabilityClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, tokenDomain.ErrBadSignature
		}
		return s.key, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, tokenDomain.ErrBadSignature
	}
	if claims.Issuer != capabilityIssuer || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, tokenDomain.ErrBadSignature
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, tokenDomain.ErrBadSignature
	}
	resourceID, err := uuid.Parse(claims.ResourceID)
	if err != nil {
		return nil, tokenDomain.ErrBadSignature
	}

	if !now.Before(claims.ExpiresAt.Time) {
		return nil, tokenDomain.ErrTokenExpired
	}
	if resourceID != expectedResourceID {
		return nil, tokenDomain.ErrResourceMismatch
	}
	if claims.Purpose != expectedPurpose {
		return nil, tokenDomain.ErrPurposeMismatch
	}

	return &tokenDomain.VerifiedClaims{
		SubjectID:  subjectID,
		ResourceID: resourceID,
		Purpose:    claims.Purpose,
		Nonce:      claims.ID,
		IssuedAt:   claims.IssuedAt.Time,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// NewJWTCapabilitySigner creates a CapabilitySigner using HS256 with the given
// key and per-purpose lifetimes.
func NewJWTCapabilitySigner(key []byte, previewTTL, downloadTTL time.Duration) (CapabilitySigner, error) {
	if len(key) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "capability signing key is required")
	}
	return &jwtCapabilitySigner{
		key:         key,
		previewTTL:  previewTTL,
		downloadTTL: downloadTTL,
	}, nil
}
