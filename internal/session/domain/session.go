// Package domain defines the session credential domain model: the long-lived
// access/refresh pair identifying an authenticated subject across requests.
package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUse discriminates access from refresh tokens so one can never be
// presented in place of the other.
type TokenUse string

const (
	TokenUseAccess  TokenUse = "access"
	TokenUseRefresh TokenUse = "refresh"
)

// SessionClaims is the signed claim set shared by access and refresh tokens.
// The role is a snapshot taken at issuance and not re-read until the next
// rotation, which bounds how quickly a role downgrade takes effect. Claims are
// embedded in the signed body, never looked up server-side.
type SessionClaims struct {
	Role     string   `json:"role,omitempty"`
	TokenUse TokenUse `json:"token_use"`
	jwt.RegisteredClaims
}

// TokenPair is the issuance result: a short-lived access token and a
// longer-lived refresh token. The refresh token is single-use by convention;
// callers must discard the old one after rotating. There is no server-side
// denylist of spent refresh tokens, so replay prevention is time-based only.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}
