package domain

import (
	"time"

	"github.com/google/uuid"
)

// Grant is a time-bounded sharing record giving a subject a permission level
// on all resources of a company. Grants are never mutated to expire; expiry is
// computed against evaluation time.
type Grant struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	GranteeID uuid.UUID
	GrantorID uuid.UUID
	Level     PermissionLevel
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// ActiveAt reports whether the grant is active at the given instant.
// A nil ExpiresAt never expires. The bound is closed at now: a grant expiring
// exactly at now is already expired.
func (g *Grant) ActiveAt(now time.Time) bool {
	if g.ExpiresAt == nil {
		return true
	}
	return now.Before(*g.ExpiresAt)
}
