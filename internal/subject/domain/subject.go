// Package domain defines the subject (user account) domain model consumed by
// the session layer. Account lifecycle management lives elsewhere; this module
// only reads what authentication and role snapshots need.
package domain

import (
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
)

// Subject is an account that can authenticate and hold a global role.
type Subject struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Email        string
	PasswordHash string
	Role         authzDomain.Role
	IsActive     bool
	CreatedAt    time.Time
}
