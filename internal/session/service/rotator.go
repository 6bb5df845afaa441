// Package service implements session token signing, parsing, and rotation
// primitives. The rotator depends only on an immutable signing key and a
// subject identity; role lookups for rotation live in the use case layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	apperrors "github.com/allisson/docvault/internal/errors"
	sessionDomain "github.com/allisson/docvault/internal/session/domain"
)

const sessionIssuer = "docvault/session"

// SessionRotator issues and parses session credential pairs.
type SessionRotator interface {
	// IssuePair mints a fresh access/refresh pair for a subject. The access
	// token embeds the role snapshot; the refresh token carries only the
	// subject identity.
	IssuePair(subjectID uuid.UUID, role authzDomain.Role, now time.Time) (*sessionDomain.TokenPair, error)

	// ParseRefresh validates a refresh token and returns the subject it was
	// issued to. Fails with ErrBadSignature for tampering, ErrTokenExpired
	// when the embedded lifetime has passed, and ErrWrongTokenUse for an
	// access token presented as refresh.
	ParseRefresh(token string, now time.Time) (uuid.UUID, error)

	// ParseAccess validates an access token and returns the subject identity
	// and role snapshot embedded at issuance time.
	ParseAccess(token string, now time.Time) (*authzDomain.Subject, error)
}

// jwtSessionRotator implements SessionRotator using HS256 JWTs.
type jwtSessionRotator struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// IssuePair mints a new access/refresh pair at now.
func (r *jwtSessionRotator) IssuePair(
	subjectID uuid.UUID,
	role authzDomain.Role,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	if _, err := authzDomain.RoleCapabilities(role); err != nil {
		return nil, err
	}

	now = now.UTC()
	accessExpiresAt := now.Add(r.accessTTL)
	refreshExpiresAt := now.Add(r.refreshTTL)

	access, err := r.sign(sessionDomain.SessionClaims{
		Role:     string(role),
		TokenUse: sessionDomain.TokenUseAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(accessExpiresAt),
			ID:        uuid.NewString(),
		},
	})
	if err != nil {
		return nil, err
	}

	refresh, err := r.sign(sessionDomain.SessionClaims{
		TokenUse: sessionDomain.TokenUseRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExpiresAt),
			ID:        uuid.NewString(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &sessionDomain.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// ParseRefresh validates a refresh token at now.
func (r *jwtSessionRotator) ParseRefresh(token string, now time.Time) (uuid.UUID, error) {
	claims, err := r.parse(token, now)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.TokenUse != sessionDomain.TokenUseRefresh {
		return uuid.Nil, sessionDomain.ErrWrongTokenUse
	}
	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, sessionDomain.ErrBadSignature
	}
	return subjectID, nil
}

// ParseAccess validates an access token at now.
func (r *jwtSessionRotator) ParseAccess(token string, now time.Time) (*authzDomain.Subject, error) {
	claims, err := r.parse(token, now)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse != sessionDomain.TokenUseAccess {
		return nil, sessionDomain.ErrWrongTokenUse
	}
	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, sessionDomain.ErrBadSignature
	}
	role := authzDomain.Role(claims.Role)
	if _, err := authzDomain.RoleCapabilities(role); err != nil {
		return nil, sessionDomain.ErrBadSignature
	}
	return &authzDomain.Subject{ID: subjectID, Role: role}, nil
}

func (r *jwtSessionRotator) sign(claims sessionDomain.SessionClaims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.key)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign session token")
	}
	return signed, nil
}

// parse checks the signature and expiry. Expiry uses a closed bound at now,
// consistent with capability tokens.
func (r *jwtSessionRotator) parse(token string, now time.Time) (*sessionDomain.SessionClaims, error) {
	var claims sessionDomain.SessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, sessionDomain.ErrBadSignature
		}
		return r.key, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, sessionDomain.ErrBadSignature
	}
	if claims.Issuer != sessionIssuer || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, sessionDomain.ErrBadSignature
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return nil, sessionDomain.ErrTokenExpired
	}

	return &claims, nil
}

// NewJWTSessionRotator creates a SessionRotator using HS256 with the given
// key and lifetimes.
func NewJWTSessionRotator(key []byte, accessTTL, refreshTTL time.Duration) (SessionRotator, error) {
	if len(key) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "session signing key is required")
	}
	return &jwtSessionRotator{
		key:        key,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}
