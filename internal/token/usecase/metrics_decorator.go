package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	"github.com/allisson/docvault/internal/metrics"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
)

// capabilityUseCaseWithMetrics decorates CapabilityUseCase with metrics instrumentation.
type capabilityUseCaseWithMetrics struct {
	next    CapabilityUseCase
	metrics metrics.BusinessMetrics
}

// NewCapabilityUseCaseWithMetrics wraps a CapabilityUseCase with metrics recording.
func NewCapabilityUseCaseWithMetrics(useCase CapabilityUseCase, m metrics.BusinessMetrics) CapabilityUseCase {
	return &capabilityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for capability token issuance.
func (c *capabilityUseCaseWithMetrics) Issue(
	ctx context.Context,
	subject authzDomain.Subject,
	resourceID uuid.UUID,
	purpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.IssuedToken, error) {
	start := time.Now()
	output, err := c.next.Issue(ctx, subject, resourceID, purpose, now)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "token", "capability_issue", status)
	c.metrics.RecordDuration(ctx, "token", "capability_issue", time.Since(start), status)

	return output, err
}

// Verify records metrics for capability token verification.
func (c *capabilityUseCaseWithMetrics) Verify(
	token string,
	expectedResourceID uuid.UUID,
	expectedPurpose tokenDomain.Purpose,
	now time.Time,
) (*tokenDomain.VerifiedClaims, error) {
	start := time.Now()
	claims, err := c.next.Verify(token, expectedResourceID, expectedPurpose, now)

	status := "success"
	if err != nil {
		status = "error"
	}

	// Verification is synchronous CPU work; context.Background is fine here.
	ctx := context.Background()
	c.metrics.RecordOperation(ctx, "token", "capability_verify", status)
	c.metrics.RecordDuration(ctx, "token", "capability_verify", time.Since(start), status)

	return claims, err
}
