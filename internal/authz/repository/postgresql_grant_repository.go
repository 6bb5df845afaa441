// Package repository provides SQL implementations of the authorization read interfaces.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	"github.com/allisson/docvault/internal/database"
	apperrors "github.com/allisson/docvault/internal/errors"
)

// PostgreSQLGrantRepository implements grant reads for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLGrantRepository struct {
	db *sql.DB
}

// GetActiveGrant retrieves the highest-level grant for (grantee, company) that
// is active at the given instant. Expiry is computed in the query, never
// written: a grant expiring exactly at now is already inactive. Returns
// ErrGrantNotFound when no active grant exists.
func (p *PostgreSQLGrantRepository) GetActiveGrant(
	ctx context.Context,
	granteeID uuid.UUID,
	companyID uuid.UUID,
	now time.Time,
) (*authzDomain.Grant, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, grantee_id, grantor_id, permission_level, expires_at, created_at
			  FROM grants
			  WHERE grantee_id = $1
			    AND company_id = $2
			    AND (expires_at IS NULL OR expires_at > $3)
			  ORDER BY CASE permission_level
			  	  WHEN 'admin' THEN 3
			  	  WHEN 'edit' THEN 2
			  	  ELSE 1
			  END DESC
			  LIMIT 1`

	var grant authzDomain.Grant

	err := querier.QueryRowContext(ctx, query, granteeID, companyID, now).Scan(
		&grant.ID,
		&grant.CompanyID,
		&grant.GranteeID,
		&grant.GrantorID,
		&grant.Level,
		&grant.ExpiresAt,
		&grant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authzDomain.ErrGrantNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get active grant")
	}

	return &grant, nil
}

// NewPostgreSQLGrantRepository creates a new PostgreSQL grant repository.
func NewPostgreSQLGrantRepository(db *sql.DB) *PostgreSQLGrantRepository {
	return &PostgreSQLGrantRepository{db: db}
}
