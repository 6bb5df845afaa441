package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
)

// permissionResolver implements Resolver over a grant store and a resource
// metadata source. Each decision is computed from a consistent read of inputs
// at one instant: now is passed explicitly and never sampled twice.
type permissionResolver struct {
	grantRepo    GrantRepository
	resourceRepo ResourceRepository
}

// Resolve evaluates the precedence chain: role, ownership, grant, public
// sensitivity. First success wins; higher-precedence sources are never
// weakened by the absence of lower ones.
//
// A missing resource short-circuits to OutcomeResourceNotFound before any
// source is evaluated, with one documented exception: a top-admin performing
// an admin action may act on metadata of a resource believed deleted (audit
// cleanup). That special case must stay explicit, not merged into the generic
// path.
func (r *permissionResolver) Resolve(
	ctx context.Context,
	subject authzDomain.Subject,
	resourceID uuid.UUID,
	action authzDomain.Action,
	now time.Time,
) (*authzDomain.Decision, error) {
	// Role capabilities are read first: an unknown role is a configuration
	// error and must surface as a hard failure, never a denial.
	caps, err := authzDomain.RoleCapabilities(subject.Role)
	if err != nil {
		return nil, err
	}

	resource, err := r.resourceRepo.Get(ctx, resourceID)
	if err != nil {
		if errors.Is(err, authzDomain.ErrResourceNotFound) {
			if subject.Role == authzDomain.RoleTopAdmin && action == authzDomain.ActionAdmin {
				// Top-admin metadata access on a deleted resource (audit cleanup).
				return authzDomain.Allowed(subject.ID, resourceID, action, authzDomain.SourceRole), nil
			}
			return authzDomain.ResourceMissing(subject.ID, resourceID, action), nil
		}
		return nil, err
	}

	// 1. Role: an abstract capability subsuming the action grants access to
	// any resource of any company, regardless of ownership, grants, or
	// sensitivity.
	if caps.Subsumes(action) {
		return authzDomain.Allowed(subject.ID, resourceID, action, authzDomain.SourceRole), nil
	}

	// 2. Ownership: admin-equivalent for this resource only, except for
	// admin-level management of other subjects' access. When both ownership
	// and a grant would apply, ownership wins even if the grant level is
	// higher.
	if subject.ID == resource.OwnerID && action != authzDomain.ActionAdmin {
		return authzDomain.Allowed(subject.ID, resourceID, action, authzDomain.SourceOwnership), nil
	}

	// 3. Grant: the active grant's level must cover the action, and the
	// sensitivity tier may raise the floor. Confidential and restricted
	// resources require an admin-level grant; the grant level is authoritative
	// once it clears that bar.
	grant, err := r.grantRepo.GetActiveGrant(ctx, subject.ID, resource.CompanyID, now)
	if err != nil && !errors.Is(err, authzDomain.ErrGrantNotFound) {
		return nil, err
	}
	if grant != nil && grant.ActiveAt(now) {
		required := authzDomain.RequiredLevel(action)
		if resource.Sensitivity.RequiresAdminGrant() {
			required = authzDomain.LevelAdmin
		}
		if grant.Level.Covers(required) {
			return authzDomain.Allowed(subject.ID, resourceID, action, authzDomain.SourceGrant), nil
		}
	}

	// 4. Public sensitivity widens access for view only. It never narrows
	// access earned above, and the highest tiers disable it entirely.
	if resource.Sensitivity == authzDomain.SensitivityPublic && action == authzDomain.ActionView {
		return authzDomain.Allowed(subject.ID, resourceID, action, authzDomain.SourcePublicSensitivity), nil
	}

	return authzDomain.Denied(subject.ID, resourceID, action, authzDomain.ReasonInsufficientPermission), nil
}

// NewPermissionResolver creates a Resolver with the provided repositories.
func NewPermissionResolver(grantRepo GrantRepository, resourceRepo ResourceRepository) Resolver {
	return &permissionResolver{
		grantRepo:    grantRepo,
		resourceRepo: resourceRepo,
	}
}
