package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	"github.com/allisson/docvault/internal/database"
	apperrors "github.com/allisson/docvault/internal/errors"
)

// MySQLResourceRepository implements resource metadata reads for MySQL.
type MySQLResourceRepository struct {
	db *sql.DB
}

// Get retrieves the authorization metadata of a document. Returns
// ErrResourceNotFound if the document doesn't exist.
func (m *MySQLResourceRepository) Get(
	ctx context.Context,
	resourceID uuid.UUID,
) (*authzDomain.Resource, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, company_id, sensitivity, downloadable, storage_key, created_at
			  FROM documents WHERE id = ?`

	var (
		resource   authzDomain.Resource
		idStr      string
		ownerStr   string
		companyStr string
	)

	err := querier.QueryRowContext(ctx, query, resourceID.String()).Scan(
		&idStr,
		&ownerStr,
		&companyStr,
		&resource.Sensitivity,
		&resource.Downloadable,
		&resource.StorageKey,
		&resource.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authzDomain.ErrResourceNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get resource")
	}

	if resource.ID, err = uuid.Parse(idStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse resource id")
	}
	if resource.OwnerID, err = uuid.Parse(ownerStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse owner id")
	}
	if resource.CompanyID, err = uuid.Parse(companyStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse company id")
	}

	return &resource, nil
}

// NewMySQLResourceRepository creates a new MySQL resource repository.
func NewMySQLResourceRepository(db *sql.DB) *MySQLResourceRepository {
	return &MySQLResourceRepository{db: db}
}
