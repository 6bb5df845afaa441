package domain

import (
	"github.com/allisson/docvault/internal/errors"
)

// Authorization errors.
var (
	// ErrResourceNotFound indicates the resource vanished or never existed.
	// Distinct from a denial: the caller may map it to 404, not 403.
	ErrResourceNotFound = errors.Wrap(errors.ErrNotFound, "resource not found")

	// ErrGrantNotFound indicates no active grant exists for the subject and
	// company. Absence is an expected outcome, not a failure; the resolver
	// converts it into the next precedence step.
	ErrGrantNotFound = errors.Wrap(errors.ErrNotFound, "grant not found")

	// ErrUnknownRole indicates a role outside the closed enumeration reached
	// the capability table. Fatal at startup or validation time.
	ErrUnknownRole = errors.Wrap(errors.ErrConfiguration, "unknown role")
)
