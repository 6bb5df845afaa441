package domain

import (
	"github.com/allisson/docvault/internal/errors"
)

// Subject errors.
var (
	// ErrSubjectNotFound indicates a subject with the specified ID or email
	// was not found.
	ErrSubjectNotFound = errors.Wrap(errors.ErrNotFound, "subject not found")

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords to prevent account enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrSubjectInactive indicates the subject exists but is disabled.
	ErrSubjectInactive = errors.Wrap(errors.ErrForbidden, "subject is not active")

	// ErrSubjectAlreadyExists indicates a subject with the same email already exists.
	ErrSubjectAlreadyExists = errors.Wrap(errors.ErrConflict, "subject already exists")
)
