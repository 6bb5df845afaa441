package usecase

import (
	"context"
	"time"

	"github.com/allisson/docvault/internal/metrics"
	sessionDomain "github.com/allisson/docvault/internal/session/domain"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (s *sessionUseCaseWithMetrics) Login(
	ctx context.Context,
	email, password string,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	start := time.Now()
	pair, err := s.next.Login(ctx, email, password, now)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "login", status)
	s.metrics.RecordDuration(ctx, "session", "login", time.Since(start), status)

	return pair, err
}

// Rotate records metrics for rotation operations.
func (s *sessionUseCaseWithMetrics) Rotate(
	ctx context.Context,
	refreshToken string,
	now time.Time,
) (*sessionDomain.TokenPair, error) {
	start := time.Now()
	pair, err := s.next.Rotate(ctx, refreshToken, now)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "rotate", status)
	s.metrics.RecordDuration(ctx, "session", "rotate", time.Since(start), status)

	return pair, err
}
