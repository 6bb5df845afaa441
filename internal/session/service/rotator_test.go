package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	apperrors "github.com/allisson/docvault/internal/errors"
	sessionDomain "github.com/allisson/docvault/internal/session/domain"
)

const (
	testAccessTTL  = 15 * time.Minute
	testRefreshTTL = 24 * time.Hour
)

func setupRotator(t *testing.T) SessionRotator {
	t.Helper()

	rotator, err := NewJWTSessionRotator([]byte("test-session-key"), testAccessTTL, testRefreshTTL)
	require.NoError(t, err)

	return rotator
}

func TestNewJWTSessionRotator(t *testing.T) {
	t.Run("Error_EmptyKey", func(t *testing.T) {
		rotator, err := NewJWTSessionRotator(nil, testAccessTTL, testRefreshTTL)

		assert.Nil(t, rotator)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}

func TestJWTSessionRotator_IssuePair(t *testing.T) {
	now := time.Now().UTC()
	subjectID := uuid.Must(uuid.NewV7())

	t.Run("Success_PairCarriesBothLifetimes", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now)

		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
		assert.Equal(t, now.Add(testAccessTTL).Unix(), pair.AccessExpiresAt.Unix())
		assert.Equal(t, now.Add(testRefreshTTL).Unix(), pair.RefreshExpiresAt.Unix())
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.Role("superuser"), now)

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, authzDomain.ErrUnknownRole)
	})
}

func TestJWTSessionRotator_ParseAccess(t *testing.T) {
	now := time.Now().UTC()
	subjectID := uuid.Must(uuid.NewV7())

	t.Run("Success_RoundTripWithRoleSnapshot", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleSupervisor, now)
		require.NoError(t, err)

		subject, err := rotator.ParseAccess(pair.AccessToken, now)

		assert.NoError(t, err)
		assert.Equal(t, subjectID, subject.ID)
		assert.Equal(t, authzDomain.RoleSupervisor, subject.Role)
	})

	t.Run("Error_RefreshTokenRejected", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now)
		require.NoError(t, err)

		subject, err := rotator.ParseAccess(pair.RefreshToken, now)

		assert.Nil(t, subject)
		assert.ErrorIs(t, err, sessionDomain.ErrWrongTokenUse)
	})

	t.Run("Error_ExpiredAtExactInstant", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now)
		require.NoError(t, err)

		subject, err := rotator.ParseAccess(pair.AccessToken, pair.AccessExpiresAt)

		assert.Nil(t, subject)
		assert.ErrorIs(t, err, sessionDomain.ErrTokenExpired)
	})

	t.Run("Error_DifferentKey", func(t *testing.T) {
		rotator := setupRotator(t)
		otherRotator, err := NewJWTSessionRotator([]byte("other-key"), testAccessTTL, testRefreshTTL)
		require.NoError(t, err)

		pair, err := otherRotator.IssuePair(subjectID, authzDomain.RoleMember, now)
		require.NoError(t, err)

		subject, err := rotator.ParseAccess(pair.AccessToken, now)

		assert.Nil(t, subject)
		assert.ErrorIs(t, err, sessionDomain.ErrBadSignature)
	})
}

func TestJWTSessionRotator_ParseRefresh(t *testing.T) {
	now := time.Now().UTC()
	subjectID := uuid.Must(uuid.NewV7())

	t.Run("Success_RoundTrip", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleAdmin, now)
		require.NoError(t, err)

		parsedID, err := rotator.ParseRefresh(pair.RefreshToken, now)

		assert.NoError(t, err)
		assert.Equal(t, subjectID, parsedID)
	})

	t.Run("Success_RefreshOutlivesAccess", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now)
		require.NoError(t, err)

		afterAccessExpiry := pair.AccessExpiresAt.Add(time.Minute)

		_, err = rotator.ParseAccess(pair.AccessToken, afterAccessExpiry)
		assert.ErrorIs(t, err, sessionDomain.ErrTokenExpired)

		parsedID, err := rotator.ParseRefresh(pair.RefreshToken, afterAccessExpiry)
		assert.NoError(t, err)
		assert.Equal(t, subjectID, parsedID)
	})

	t.Run("Success_OldRefreshStaysValidUntilExpiry", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now)
		require.NoError(t, err)

		// Rotation does not revoke the previous refresh token: there is no
		// server-side denylist, so both remain parseable until they expire.
		newPair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now.Add(time.Minute))
		require.NoError(t, err)

		_, err = rotator.ParseRefresh(pair.RefreshToken, now.Add(2*time.Minute))
		assert.NoError(t, err)
		_, err = rotator.ParseRefresh(newPair.RefreshToken, now.Add(2*time.Minute))
		assert.NoError(t, err)
	})

	t.Run("Error_AccessTokenRejected", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now)
		require.NoError(t, err)

		parsedID, err := rotator.ParseRefresh(pair.AccessToken, now)

		assert.Equal(t, uuid.Nil, parsedID)
		assert.ErrorIs(t, err, sessionDomain.ErrWrongTokenUse)
	})

	t.Run("Error_ExpiredAtExactInstant", func(t *testing.T) {
		rotator := setupRotator(t)

		pair, err := rotator.IssuePair(subjectID, authzDomain.RoleMember, now)
		require.NoError(t, err)

		parsedID, err := rotator.ParseRefresh(pair.RefreshToken, pair.RefreshExpiresAt)

		assert.Equal(t, uuid.Nil, parsedID)
		assert.ErrorIs(t, err, sessionDomain.ErrTokenExpired)
	})

	t.Run("Error_GarbageToken", func(t *testing.T) {
		rotator := setupRotator(t)

		parsedID, err := rotator.ParseRefresh("not-a-token", now)

		assert.Equal(t, uuid.Nil, parsedID)
		assert.ErrorIs(t, err, sessionDomain.ErrBadSignature)
	})
}
