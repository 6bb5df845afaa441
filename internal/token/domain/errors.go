package domain

import (
	"github.com/allisson/docvault/internal/errors"
)

// Capability token errors. The verification failures all wrap ErrUnauthorized
// so handlers collapse them into one generic "invalid or expired token"
// response; which check failed is logged, never leaked to the client.
var (
	// ErrBadSignature indicates the token is malformed or its signature
	// doesn't cover the claim set.
	ErrBadSignature = errors.Wrap(errors.ErrUnauthorized, "bad signature")

	// ErrTokenExpired indicates the token's lifetime has passed. The bound is
	// closed: a token checked exactly at its expiry instant is expired.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrResourceMismatch indicates the token was minted for a different
	// resource than the one being fetched.
	ErrResourceMismatch = errors.Wrap(errors.ErrUnauthorized, "resource mismatch")

	// ErrPurposeMismatch indicates the token's purpose doesn't match the
	// request: a preview token never satisfies a download.
	ErrPurposeMismatch = errors.Wrap(errors.ErrUnauthorized, "purpose mismatch")

	// ErrIssueWithoutPermission indicates Issue was called without an allowed
	// decision. This is a programming-contract violation, not a recoverable
	// user error: the resolver must be invoked first.
	ErrIssueWithoutPermission = errors.New("capability token issue requires an allowed decision")

	// ErrNotDownloadable indicates a download token was requested for a
	// resource flagged non-downloadable.
	ErrNotDownloadable = errors.Wrap(errors.ErrForbidden, "resource is not downloadable")
)
