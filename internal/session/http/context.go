// Package http provides HTTP handlers and middleware for session management.
package http

import (
	"context"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
)

// subjectKey is a context key type for storing authenticated subjects.
type subjectKey struct{}

// WithSubject stores an authenticated subject in the context.
// This is called by the authentication middleware after access token validation.
func WithSubject(ctx context.Context, subject *authzDomain.Subject) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// GetSubject retrieves the authenticated subject from the context.
// Returns (subject, true) if present, or (nil, false) if no subject was set.
func GetSubject(ctx context.Context) (*authzDomain.Subject, bool) {
	subject, ok := ctx.Value(subjectKey{}).(*authzDomain.Subject)
	return subject, ok
}
