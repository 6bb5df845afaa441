package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	"github.com/allisson/docvault/internal/metrics"
)

// resolverWithMetrics decorates Resolver with metrics instrumentation.
// The decision outcome is recorded as the status label so allowed, denied, and
// not-found rates can be charted separately from hard failures.
type resolverWithMetrics struct {
	next    Resolver
	metrics metrics.BusinessMetrics
}

// NewResolverWithMetrics wraps a Resolver with metrics recording.
func NewResolverWithMetrics(resolver Resolver, m metrics.BusinessMetrics) Resolver {
	return &resolverWithMetrics{
		next:    resolver,
		metrics: m,
	}
}

// Resolve records metrics for permission resolution.
func (r *resolverWithMetrics) Resolve(
	ctx context.Context,
	subject authzDomain.Subject,
	resourceID uuid.UUID,
	action authzDomain.Action,
	now time.Time,
) (*authzDomain.Decision, error) {
	start := time.Now()
	decision, err := r.next.Resolve(ctx, subject, resourceID, action, now)

	status := "error"
	if err == nil {
		status = string(decision.Outcome)
	}

	r.metrics.RecordOperation(ctx, "authz", "resolve", status)
	r.metrics.RecordDuration(ctx, "authz", "resolve", time.Since(start), status)

	return decision, err
}
