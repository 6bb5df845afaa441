package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	sessionDomain "github.com/allisson/docvault/internal/session/domain"
	sessionMocks "github.com/allisson/docvault/internal/session/service/mocks"
	sessionUCMocks "github.com/allisson/docvault/internal/session/usecase/mocks"
	subjectDomain "github.com/allisson/docvault/internal/subject/domain"
	subjectMocks "github.com/allisson/docvault/internal/subject/service/mocks"
)

func setupSessionUseCase(t *testing.T) (
	SessionUseCase,
	*sessionUCMocks.MockSubjectRepository,
	*subjectMocks.MockPasswordService,
	*sessionMocks.MockSessionRotator,
) {
	t.Helper()

	subjectRepo := new(sessionUCMocks.MockSubjectRepository)
	passwordService := new(subjectMocks.MockPasswordService)
	rotator := new(sessionMocks.MockSessionRotator)

	return NewSessionUseCase(subjectRepo, passwordService, rotator), subjectRepo, passwordService, rotator
}

func testSubject(role authzDomain.Role, active bool) *subjectDomain.Subject {
	return &subjectDomain.Subject{
		ID:           uuid.Must(uuid.NewV7()),
		CompanyID:    uuid.Must(uuid.NewV7()),
		Email:        "user@example.com",
		PasswordHash: "argon2id-hash",
		Role:         role,
		IsActive:     active,
	}
}

func testTokenPair(now time.Time) *sessionDomain.TokenPair {
	return &sessionDomain.TokenPair{
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestSessionUseCase_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		useCase, subjectRepo, passwordService, rotator := setupSessionUseCase(t)

		subject := testSubject(authzDomain.RoleMember, true)
		pair := testTokenPair(now)

		subjectRepo.On("GetByEmail", ctx, subject.Email).Return(subject, nil)
		passwordService.On("ComparePassword", "correct-password", subject.PasswordHash).Return(true)
		rotator.On("IssuePair", subject.ID, subject.Role, now).Return(pair, nil)

		result, err := useCase.Login(ctx, subject.Email, "correct-password", now)

		assert.NoError(t, err)
		assert.Equal(t, pair, result)
		subjectRepo.AssertExpectations(t)
		rotator.AssertExpectations(t)
	})

	t.Run("Error_UnknownEmailHidesEnumeration", func(t *testing.T) {
		useCase, subjectRepo, _, rotator := setupSessionUseCase(t)

		subjectRepo.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, subjectDomain.ErrSubjectNotFound)

		result, err := useCase.Login(ctx, "nobody@example.com", "password", now)

		assert.Nil(t, result)
		// Unknown email and wrong password are indistinguishable to the caller.
		assert.ErrorIs(t, err, subjectDomain.ErrInvalidCredentials)
		rotator.AssertNotCalled(t, "IssuePair", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		useCase, subjectRepo, passwordService, rotator := setupSessionUseCase(t)

		subject := testSubject(authzDomain.RoleMember, true)

		subjectRepo.On("GetByEmail", ctx, subject.Email).Return(subject, nil)
		passwordService.On("ComparePassword", "wrong-password", subject.PasswordHash).Return(false)

		result, err := useCase.Login(ctx, subject.Email, "wrong-password", now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, subjectDomain.ErrInvalidCredentials)
		rotator.AssertNotCalled(t, "IssuePair", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_InactiveSubject", func(t *testing.T) {
		useCase, subjectRepo, passwordService, _ := setupSessionUseCase(t)

		subject := testSubject(authzDomain.RoleMember, false)

		subjectRepo.On("GetByEmail", ctx, subject.Email).Return(subject, nil)

		result, err := useCase.Login(ctx, subject.Email, "correct-password", now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, subjectDomain.ErrSubjectInactive)
		// Password is never compared for an inactive account.
		passwordService.AssertNotCalled(t, "ComparePassword", mock.Anything, mock.Anything)
	})

	t.Run("Error_RepositoryFailurePropagates", func(t *testing.T) {
		useCase, subjectRepo, _, _ := setupSessionUseCase(t)

		subjectRepo.On("GetByEmail", ctx, "user@example.com").
			Return(nil, assert.AnError)

		result, err := useCase.Login(ctx, "user@example.com", "password", now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSessionUseCase_Rotate(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Success_NewPairCarriesFreshRole", func(t *testing.T) {
		useCase, subjectRepo, _, rotator := setupSessionUseCase(t)

		// The subject was promoted after the original pair was issued; the
		// rotated access token must snapshot the current role.
		subject := testSubject(authzDomain.RoleSupervisor, true)
		pair := testTokenPair(now)

		rotator.On("ParseRefresh", "refresh-token", now).Return(subject.ID, nil)
		subjectRepo.On("Get", ctx, subject.ID).Return(subject, nil)
		rotator.On("IssuePair", subject.ID, authzDomain.RoleSupervisor, now).Return(pair, nil)

		result, err := useCase.Rotate(ctx, "refresh-token", now)

		assert.NoError(t, err)
		assert.Equal(t, pair, result)
		rotator.AssertExpectations(t)
	})

	t.Run("Error_BadRefreshToken", func(t *testing.T) {
		useCase, subjectRepo, _, rotator := setupSessionUseCase(t)

		rotator.On("ParseRefresh", "tampered", now).
			Return(uuid.Nil, sessionDomain.ErrBadSignature)

		result, err := useCase.Rotate(ctx, "tampered", now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, sessionDomain.ErrBadSignature)
		subjectRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Error_ExpiredRefreshToken", func(t *testing.T) {
		useCase, _, _, rotator := setupSessionUseCase(t)

		rotator.On("ParseRefresh", "expired", now).
			Return(uuid.Nil, sessionDomain.ErrTokenExpired)

		result, err := useCase.Rotate(ctx, "expired", now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, sessionDomain.ErrTokenExpired)
	})

	t.Run("Error_SubjectDeletedAfterIssuance", func(t *testing.T) {
		useCase, subjectRepo, _, rotator := setupSessionUseCase(t)

		subjectID := uuid.Must(uuid.NewV7())

		rotator.On("ParseRefresh", "refresh-token", now).Return(subjectID, nil)
		subjectRepo.On("Get", ctx, subjectID).Return(nil, subjectDomain.ErrSubjectNotFound)

		result, err := useCase.Rotate(ctx, "refresh-token", now)

		assert.Nil(t, result)
		// Indistinguishable from a bad token.
		assert.ErrorIs(t, err, subjectDomain.ErrInvalidCredentials)
	})

	t.Run("Error_SubjectDeactivatedAfterIssuance", func(t *testing.T) {
		useCase, subjectRepo, _, rotator := setupSessionUseCase(t)

		subject := testSubject(authzDomain.RoleMember, false)

		rotator.On("ParseRefresh", "refresh-token", now).Return(subject.ID, nil)
		subjectRepo.On("Get", ctx, subject.ID).Return(subject, nil)

		result, err := useCase.Rotate(ctx, "refresh-token", now)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, subjectDomain.ErrSubjectInactive)
		rotator.AssertNotCalled(t, "IssuePair", mock.Anything, mock.Anything, mock.Anything)
	})
}
