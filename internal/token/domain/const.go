// Package domain defines the capability token domain model.
// A capability token is a signed, narrowly-scoped, short-lived credential
// authorizing exactly one purpose on exactly one resource.
package domain

import (
	authzDomain "github.com/allisson/docvault/internal/authz/domain"
)

// Purpose is the single use a capability token authorizes.
type Purpose string

const (
	// PurposePreview authorizes rendering a document preview.
	PurposePreview Purpose = "preview"

	// PurposeDownload authorizes one document transfer attempt.
	PurposeDownload Purpose = "download"
)

// Valid reports whether the purpose is one of the known values.
func (p Purpose) Valid() bool {
	return p == PurposePreview || p == PurposeDownload
}

// RequiredAction returns the resolver action a purpose maps to. Both purposes
// require at least view; download additionally requires the resource to be
// downloadable, which the issuer checks separately.
func (p Purpose) RequiredAction() authzDomain.Action {
	return authzDomain.ActionView
}
