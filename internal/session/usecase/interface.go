// Package usecase implements business logic orchestration for session credentials.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	sessionDomain "github.com/allisson/docvault/internal/session/domain"
	subjectDomain "github.com/allisson/docvault/internal/subject/domain"
)

// SubjectRepository defines the subject reads the session flow needs.
type SubjectRepository interface {
	// Get retrieves a subject by ID. Returns ErrSubjectNotFound if not found.
	Get(ctx context.Context, subjectID uuid.UUID) (*subjectDomain.Subject, error)

	// GetByEmail retrieves a subject by email. Returns ErrSubjectNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*subjectDomain.Subject, error)
}

// SessionUseCase issues and rotates session credential pairs.
type SessionUseCase interface {
	// Login authenticates a subject by email and password and issues a fresh
	// token pair. Returns ErrInvalidCredentials for unknown emails and wrong
	// passwords alike, and ErrSubjectInactive for disabled accounts.
	Login(ctx context.Context, email, password string, now time.Time) (*sessionDomain.TokenPair, error)

	// Rotate exchanges a valid refresh token for a new pair. The subject's
	// role is re-read here, so a role change takes effect on the next
	// rotation. Callers must discard the old refresh token; the previous one
	// stays formally valid until its own expiry (no server-side denylist).
	Rotate(ctx context.Context, refreshToken string, now time.Time) (*sessionDomain.TokenPair, error)
}
