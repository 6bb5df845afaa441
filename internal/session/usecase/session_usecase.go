package usecase

import (
	"context"
	"errors"
	"time"

	sessionDomain "github.com/allisson/docvault/internal/session/domain"
	sessionService "github.com/allisson/docvault/internal/session/service"
	subjectDomain "github.com/allisson/docvault/internal/subject/domain"
	subjectService "github.com/allisson/docvault/internal/subject/service"
)

// sessionUseCase implements SessionUseCase over the rotator service and the
// subject store.
type sessionUseCase struct {
	subjectRepo     SubjectRepository
	passwordService subjectService.PasswordService
	rotator         sessionService.SessionRotator
}

// Login authenticates a subject and issues a fresh token pair.
func (s *sessionUseCase) Login(
	ctx context.Context,
	email, password string,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	subject, err := s.subjectRepo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email returns the generic error to prevent enumeration.
		if errors.Is(err, subjectDomain.ErrSubjectNotFound) {
			return nil, subjectDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !subject.IsActive {
		return nil, subjectDomain.ErrSubjectInactive
	}

	if !s.passwordService.ComparePassword(password, subject.PasswordHash) {
		return nil, subjectDomain.ErrInvalidCredentials
	}

	return s.rotator.IssuePair(subject.ID, subject.Role, now)
}

// Rotate exchanges a refresh token for a new pair, re-reading the subject so
// the new access token carries a fresh role snapshot.
func (s *sessionUseCase) Rotate(
	ctx context.Context,
	refreshToken string,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	subjectID, err := s.rotator.ParseRefresh(refreshToken, now)
	if err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.Get(ctx, subjectID)
	if err != nil {
		// A subject deleted after issuance must not rotate; keep the
		// response indistinguishable from a bad token.
		if errors.Is(err, subjectDomain.ErrSubjectNotFound) {
			return nil, subjectDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !subject.IsActive {
		return nil, subjectDomain.ErrSubjectInactive
	}

	return s.rotator.IssuePair(subject.ID, subject.Role, now)
}

// NewSessionUseCase creates a SessionUseCase with the provided dependencies.
func NewSessionUseCase(
	subjectRepo SubjectRepository,
	passwordService subjectService.PasswordService,
	rotator sessionService.SessionRotator,
) SessionUseCase {
	return &sessionUseCase{
		subjectRepo:     subjectRepo,
		passwordService: passwordService,
		rotator:         rotator,
	}
}
