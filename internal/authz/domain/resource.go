package domain

import (
	"time"

	"github.com/google/uuid"
)

// Resource is the authorization-relevant metadata of a document. Content lives
// in external storage; the resolver only sees ownership, company, and
// sensitivity at a point in time.
type Resource struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	CompanyID    uuid.UUID
	Sensitivity  Sensitivity
	Downloadable bool
	StorageKey   string
	CreatedAt    time.Time
}

// Subject is an authenticated actor. The role is read fresh per request and
// immutable for the duration of one decision.
type Subject struct {
	ID   uuid.UUID
	Role Role
}
