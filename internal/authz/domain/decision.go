package domain

import (
	"github.com/google/uuid"
)

// Outcome is the result class of an access decision.
type Outcome string

const (
	// OutcomeAllowed means access is granted; Via records the authority.
	OutcomeAllowed Outcome = "allowed"

	// OutcomeDenied means a decision was reached and access is refused.
	// Safe to surface as a generic "not authorized".
	OutcomeDenied Outcome = "denied"

	// OutcomeResourceNotFound means the resource vanished or never existed.
	// Distinct from a denial.
	OutcomeResourceNotFound Outcome = "resource_not_found"
)

// DenyReason explains a denied decision.
type DenyReason string

const (
	// ReasonInsufficientPermission is the single expected-path denial reason.
	ReasonInsufficientPermission DenyReason = "insufficient_permission"
)

// Decision is the derived outcome of combining role, ownership, grant, and
// sensitivity for one (subject, resource, action) triple at one instant.
// It is never persisted.
type Decision struct {
	Outcome    Outcome
	Via        Source
	Reason     DenyReason
	SubjectID  uuid.UUID
	ResourceID uuid.UUID
	Action     Action
}

// IsAllowed reports whether the decision grants access.
func (d *Decision) IsAllowed() bool {
	return d != nil && d.Outcome == OutcomeAllowed
}

// Allowed builds an allowed decision annotated with its source.
func Allowed(subjectID, resourceID uuid.UUID, action Action, via Source) *Decision {
	return &Decision{
		Outcome:    OutcomeAllowed,
		Via:        via,
		SubjectID:  subjectID,
		ResourceID: resourceID,
		Action:     action,
	}
}

// Denied builds a denied decision with its reason.
func Denied(subjectID, resourceID uuid.UUID, action Action, reason DenyReason) *Decision {
	return &Decision{
		Outcome:    OutcomeDenied,
		Reason:     reason,
		SubjectID:  subjectID,
		ResourceID: resourceID,
		Action:     action,
	}
}

// ResourceMissing builds a resource-not-found decision.
func ResourceMissing(subjectID, resourceID uuid.UUID, action Action) *Decision {
	return &Decision{
		Outcome:    OutcomeResourceNotFound,
		SubjectID:  subjectID,
		ResourceID: resourceID,
		Action:     action,
	}
}
