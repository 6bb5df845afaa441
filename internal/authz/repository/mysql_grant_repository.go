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

// MySQLGrantRepository implements grant reads for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLGrantRepository struct {
	db *sql.DB
}

// GetActiveGrant retrieves the highest-level grant for (grantee, company) that
// is active at the given instant. Returns ErrGrantNotFound when no active
// grant exists.
func (m *MySQLGrantRepository) GetActiveGrant(
	ctx context.Context,
	granteeID uuid.UUID,
	companyID uuid.UUID,
	now time.Time,
) (*authzDomain.Grant, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, company_id, grantee_id, grantor_id, permission_level, expires_at, created_at
			  FROM grants
			  WHERE grantee_id = ?
			    AND company_id = ?
			    AND (expires_at IS NULL OR expires_at > ?)
			  ORDER BY CASE permission_level
			  	  WHEN 'admin' THEN 3
			  	  WHEN 'edit' THEN 2
			  	  ELSE 1
			  END DESC
			  LIMIT 1`

	var (
		grant      authzDomain.Grant
		idStr      string
		companyStr string
		granteeStr string
		grantorStr string
	)

	err := querier.QueryRowContext(ctx, query, granteeID.String(), companyID.String(), now).Scan(
		&idStr,
		&companyStr,
		&granteeStr,
		&grantorStr,
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

	if grant.ID, err = uuid.Parse(idStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse grant id")
	}
	if grant.CompanyID, err = uuid.Parse(companyStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse company id")
	}
	if grant.GranteeID, err = uuid.Parse(granteeStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse grantee id")
	}
	if grant.GrantorID, err = uuid.Parse(grantorStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse grantor id")
	}

	return &grant, nil
}

// NewMySQLGrantRepository creates a new MySQL grant repository.
func NewMySQLGrantRepository(db *sql.DB) *MySQLGrantRepository {
	return &MySQLGrantRepository{db: db}
}
