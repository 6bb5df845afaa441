package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	authzMocks "github.com/allisson/docvault/internal/authz/usecase/mocks"
	apperrors "github.com/allisson/docvault/internal/errors"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
	tokenMocks "github.com/allisson/docvault/internal/token/service/mocks"
)

func setupCapabilityUseCase(t *testing.T) (
	CapabilityUseCase,
	*authzMocks.MockResolver,
	*authzMocks.MockResourceRepository,
	*tokenMocks.MockCapabilitySigner,
) {
	t.Helper()

	resolver := new(authzMocks.MockResolver)
	resourceRepo := new(authzMocks.MockResourceRepository)
	signer := new(tokenMocks.MockCapabilitySigner)

	return NewCapabilityUseCase(resolver, resourceRepo, signer), resolver, resourceRepo, signer
}

func TestCapabilityUseCase_Issue(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	subject := authzDomain.Subject{ID: uuid.Must(uuid.NewV7()), Role: authzDomain.RoleMember}
	resourceID := uuid.Must(uuid.NewV7())

	t.Run("Success_PreviewToken", func(t *testing.T) {
		useCase, resolver, _, signer := setupCapabilityUseCase(t)

		decision := authzDomain.Allowed(subject.ID, resourceID, authzDomain.ActionView, authzDomain.SourceGrant)
		issued := &tokenDomain.IssuedToken{Token: "signed-token", ExpiresAt: now.Add(5 * time.Minute)}

		resolver.On("Resolve", ctx, subject, resourceID, authzDomain.ActionView, now).Return(decision, nil)
		signer.On("Issue", subject.ID, resourceID, tokenDomain.PurposePreview, now).Return(issued, nil)

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.PurposePreview, now)

		assert.NoError(t, err)
		assert.Equal(t, issued, result)
		resolver.AssertExpectations(t)
		signer.AssertExpectations(t)
	})

	t.Run("Success_DownloadTokenChecksDownloadable", func(t *testing.T) {
		useCase, resolver, resourceRepo, signer := setupCapabilityUseCase(t)

		decision := authzDomain.Allowed(subject.ID, resourceID, authzDomain.ActionView, authzDomain.SourceOwnership)
		resource := &authzDomain.Resource{
			ID:           resourceID,
			OwnerID:      subject.ID,
			CompanyID:    uuid.Must(uuid.NewV7()),
			Sensitivity:  authzDomain.SensitivityInternal,
			Downloadable: true,
		}
		issued := &tokenDomain.IssuedToken{Token: "signed-token", ExpiresAt: now.Add(2 * time.Minute)}

		resolver.On("Resolve", ctx, subject, resourceID, authzDomain.ActionView, now).Return(decision, nil)
		resourceRepo.On("Get", ctx, resourceID).Return(resource, nil)
		signer.On("Issue", subject.ID, resourceID, tokenDomain.PurposeDownload, now).Return(issued, nil)

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.PurposeDownload, now)

		assert.NoError(t, err)
		assert.Equal(t, issued, result)
		resourceRepo.AssertExpectations(t)
	})

	t.Run("Error_UnknownPurpose", func(t *testing.T) {
		useCase, resolver, _, _ := setupCapabilityUseCase(t)

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.Purpose("print"), now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_DeniedDecisionIsForbidden", func(t *testing.T) {
		useCase, resolver, _, signer := setupCapabilityUseCase(t)

		decision := authzDomain.Denied(subject.ID, resourceID, authzDomain.ActionView, authzDomain.ReasonInsufficientPermission)
		resolver.On("Resolve", ctx, subject, resourceID, authzDomain.ActionView, now).Return(decision, nil)

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.PurposePreview, now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		signer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_ResourceNotFound", func(t *testing.T) {
		useCase, resolver, _, _ := setupCapabilityUseCase(t)

		decision := authzDomain.ResourceMissing(subject.ID, resourceID, authzDomain.ActionView)
		resolver.On("Resolve", ctx, subject, resourceID, authzDomain.ActionView, now).Return(decision, nil)

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.PurposePreview, now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, authzDomain.ErrResourceNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_DownloadOfNonDownloadableResource", func(t *testing.T) {
		useCase, resolver, resourceRepo, signer := setupCapabilityUseCase(t)

		decision := authzDomain.Allowed(subject.ID, resourceID, authzDomain.ActionView, authzDomain.SourceRole)
		resource := &authzDomain.Resource{
			ID:           resourceID,
			Sensitivity:  authzDomain.SensitivityInternal,
			Downloadable: false,
		}

		resolver.On("Resolve", ctx, subject, resourceID, authzDomain.ActionView, now).Return(decision, nil)
		resourceRepo.On("Get", ctx, resourceID).Return(resource, nil)

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.PurposeDownload, now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, tokenDomain.ErrNotDownloadable)
		signer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_ResourceDeletedBetweenResolveAndDownloadCheck", func(t *testing.T) {
		useCase, resolver, resourceRepo, _ := setupCapabilityUseCase(t)

		decision := authzDomain.Allowed(subject.ID, resourceID, authzDomain.ActionView, authzDomain.SourceRole)

		resolver.On("Resolve", ctx, subject, resourceID, authzDomain.ActionView, now).Return(decision, nil)
		resourceRepo.On("Get", ctx, resourceID).Return(nil, authzDomain.ErrResourceNotFound)

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.PurposeDownload, now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, authzDomain.ErrResourceNotFound)
	})

	t.Run("Error_ResolverFailurePropagates", func(t *testing.T) {
		useCase, resolver, _, _ := setupCapabilityUseCase(t)

		resolver.On("Resolve", ctx, subject, resourceID, authzDomain.ActionView, now).
			Return(nil, apperrors.New("resolver failed"))

		result, err := useCase.Issue(ctx, subject, resourceID, tokenDomain.PurposePreview, now)

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestCapabilityUseCase_Verify(t *testing.T) {
	now := time.Now().UTC()
	resourceID := uuid.Must(uuid.NewV7())

	t.Run("Success_DelegatesToSigner", func(t *testing.T) {
		useCase, _, _, signer := setupCapabilityUseCase(t)

		claims := &tokenDomain.VerifiedClaims{
			SubjectID:  uuid.Must(uuid.NewV7()),
			ResourceID: resourceID,
			Purpose:    tokenDomain.PurposePreview,
			Nonce:      "nonce",
		}
		signer.On("Verify", "signed-token", resourceID, tokenDomain.PurposePreview, now).Return(claims, nil)

		result, err := useCase.Verify("signed-token", resourceID, tokenDomain.PurposePreview, now)

		assert.NoError(t, err)
		assert.Equal(t, claims, result)
		signer.AssertExpectations(t)
	})

	t.Run("Error_SignerFailurePropagates", func(t *testing.T) {
		useCase, _, _, signer := setupCapabilityUseCase(t)

		signer.On("Verify", "bad-token", resourceID, tokenDomain.PurposeDownload, now).
			Return(nil, tokenDomain.ErrBadSignature)

		result, err := useCase.Verify("bad-token", resourceID, tokenDomain.PurposeDownload, now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, tokenDomain.ErrBadSignature)
	})
}
