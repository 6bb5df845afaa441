package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/docvault/internal/errors"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

const (
	testPreviewTTL  = 5 * time.Minute
	testDownloadTTL = 2 * time.Minute
)

// setupSigner creates a capability signer with a fixed test key.
func setupSigner(t *testing.T) CapabilitySigner {
	t.Helper()

	signer, err := NewJWTCapabilitySigner([]byte("test-capability-key"), testPreviewTTL, testDownloadTTL)
	require.NoError(t, err)

	return signer
}

func TestNewJWTCapabilitySigner(t *testing.T) {
	t.Run("Error_EmptyKey", func(t *testing.T) {
		signer, err := NewJWTCapabilitySigner(nil, testPreviewTTL, testDownloadTTL)

		assert.Nil(t, signer)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}

func TestJWTCapabilitySigner_Issue(t *testing.T) {
	now := time.Now().UTC()
	subjectID := uuid.Must(uuid.NewV7())
	resourceID := uuid.Must(uuid.NewV7())

	t.Run("Success_PreviewTokenUsesPreviewTTL", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)

		assert.NoError(t, err)
		assert.NotEmpty(t, issued.Token)
		assert.Equal(t, now.Add(testPreviewTTL).Unix(), issued.ExpiresAt.Unix())
	})

	t.Run("Success_DownloadTokenUsesShorterTTL", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposeDownload, now)

		assert.NoError(t, err)
		assert.Equal(t, now.Add(testDownloadTTL).Unix(), issued.ExpiresAt.Unix())
	})

	t.Run("Success_NoncesAreUnique", func(t *testing.T) {
		signer := setupSigner(t)

		first, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)
		second, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)

		// Same subject, resource, purpose and instant still produce distinct tokens.
		assert.NotEqual(t, first.Token, second.Token)

		firstClaims, err := signer.Verify(first.Token, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)
		secondClaims, err := signer.Verify(second.Token, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)

		assert.NotEqual(t, firstClaims.Nonce, secondClaims.Nonce)
	})

	t.Run("Error_UnknownPurpose", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.Purpose("print"), now)

		assert.Nil(t, issued)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestJWTCapabilitySigner_Verify(t *testing.T) {
	now := time.Now().UTC()
	subjectID := uuid.Must(uuid.NewV7())
	resourceID := uuid.Must(uuid.NewV7())

	t.Run("Success_RoundTrip", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposeDownload, now)
		require.NoError(t, err)

		claims, err := signer.Verify(issued.Token, resourceID, tokenDomain.PurposeDownload, now)

		assert.NoError(t, err)
		assert.Equal(t, subjectID, claims.SubjectID)
		assert.Equal(t, resourceID, claims.ResourceID)
		assert.Equal(t, tokenDomain.PurposeDownload, claims.Purpose)
		assert.NotEmpty(t, claims.Nonce)
	})

	t.Run("Error_TokenSignedWithDifferentKey", func(t *testing.T) {
		signer := setupSigner(t)
		otherSigner, err := NewJWTCapabilitySigner([]byte("other-key"), testPreviewTTL, testDownloadTTL)
		require.NoError(t, err)

		issued, err := otherSigner.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)

		claims, err := signer.Verify(issued.Token, resourceID, tokenDomain.PurposePreview, now)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, tokenDomain.ErrBadSignature)
	})

	t.Run("Error_GarbageToken", func(t *testing.T) {
		signer := setupSigner(t)

		claims, err := signer.Verify("not-a-token", resourceID, tokenDomain.PurposePreview, now)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, tokenDomain.ErrBadSignature)
	})

	t.Run("Error_ExpiredAtExactInstant", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)

		// The expiry bound is closed: a token checked exactly at expiresAt fails.
		claims, err := signer.Verify(issued.Token, resourceID, tokenDomain.PurposePreview, issued.ExpiresAt)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, tokenDomain.ErrTokenExpired)
	})

	t.Run("Success_ValidJustBeforeExpiry", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)

		claims, err := signer.Verify(
			issued.Token,
			resourceID,
			tokenDomain.PurposePreview,
			issued.ExpiresAt.Add(-time.Second),
		)

		assert.NoError(t, err)
		assert.NotNil(t, claims)
	})

	t.Run("Error_ResourceMismatch", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)

		claims, err := signer.Verify(issued.Token, uuid.Must(uuid.NewV7()), tokenDomain.PurposePreview, now)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, tokenDomain.ErrResourceMismatch)
	})

	t.Run("Error_PurposeMismatch", func(t *testing.T) {
		signer := setupSigner(t)

		issued, err := signer.Issue(subjectID, resourceID, tokenDomain.PurposePreview, now)
		require.NoError(t, err)

		// A preview token never authorizes a download.
		claims, err := signer.Verify(issued.Token, resourceID, tokenDomain.PurposeDownload, now)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, tokenDomain.ErrPurposeMismatch)
	})
}
