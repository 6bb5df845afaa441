package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	authzUseCase "github.com/allisson/docvault/internal/authz/usecase"
	apperrors "github.com/allisson/docvault/internal/errors"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
	tokenService "github.com/allisson/docvault/internal/token/service"
)

// capabilityUseCase implements CapabilityUseCase by chaining the permission
// resolver and the capability signer. Issuance has no side effects beyond
// generating a fresh nonce and computing a signature; nothing is stored.
type capabilityUseCase struct {
	resolver     authzUseCase.Resolver
	resourceRepo authzUseCase.ResourceRepository
	signer       tokenService.CapabilitySigner
}

// Issue resolves the effective permission and mints a token scoped to one
// resource and one purpose.
func (u *capabilityUseCase) Issue(
	ctx context.Context,
	subject authzDomain.Subject,
	resourceID uuid.UUID,
	purpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.IssuedToken, error) {
	if !purpose.Valid() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown token purpose")
	}

	decision, err := u.resolver.Resolve(ctx, subject, resourceID, purpose.RequiredAction(), now)
	if err != nil {
		return nil, err
	}

	switch decision.Outcome {
	case authzDomain.OutcomeResourceNotFound:
		return nil, authzDomain.ErrResourceNotFound
	case authzDomain.OutcomeDenied:
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "insufficient permission for capability token")
	}

	// Download tokens additionally require the resource to allow downloads.
	// The resource is re-read here; a concurrent delete surfaces as not found.
	if purpose == tokenDomain.PurposeDownload {
		resource, err := u.resourceRepo.Get(ctx, resourceID)
		if err != nil {
			return nil, err
		}
		if !resource.Downloadable {
			return nil, tokenDomain.ErrNotDownloadable
		}
	}

	return u.mint(subject.ID, resourceID, purpose, decision, now)
}

// mint enforces the issuer precondition: the supplied decision must be
// allowed and cover the purpose's action. A violation here means the resolver
// was bypassed, which is a programming error, not a user-facing denial.
func (u *capabilityUseCase) mint(
	subjectID uuid.UUID,
	resourceID uuid.UUID,
	purpose tokenDomain.Purpose,
	decision *authzDomain.Decision,
	now time.Time,
) (*tokenDomain.IssuedToken, error) {
	if !decision.IsAllowed() ||
		decision.ResourceID != resourceID ||
		decision.Action != purpose.RequiredAction() {
		return nil, tokenDomain.ErrIssueWithoutPermission
	}
	return u.signer.Issue(subjectID, resourceID, purpose, now)
}

// Verify delegates to the signer. No context is needed: verification is pure
// CPU work with no I/O.
func (u *capabilityUseCase) Verify(
	token string,
	expectedResourceID uuid.UUID,
	expectedPurpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.VerifiedClaims, error) {
	return u.signer.Verify(token, expectedResourceID, expectedPurpose, now)
}

// NewCapabilityUseCase creates a CapabilityUseCase with the provided dependencies.
func NewCapabilityUseCase(
	resolver authzUseCase.Resolver,
	resourceRepo authzUseCase.ResourceRepository,
	signer tokenService.CapabilitySigner,
) CapabilityUseCase {
	return &capabilityUseCase{
		resolver:     resolver,
		resourceRepo: resourceRepo,
		signer:       signer,
	}
}
