package domain

import (
	"github.com/allisson/docvault/internal/errors"
)

// Session credential errors. All wrap ErrUnauthorized: handlers surface one
// generic "invalid or expired token" body regardless of which check failed.
var (
	// ErrBadSignature indicates the token is malformed or tampered.
	ErrBadSignature = errors.Wrap(errors.ErrUnauthorized, "bad signature")

	// ErrTokenExpired indicates the token's embedded lifetime has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrWrongTokenUse indicates an access token was presented for rotation
	// or a refresh token was presented for authentication.
	ErrWrongTokenUse = errors.Wrap(errors.ErrUnauthorized, "wrong token use")
)
