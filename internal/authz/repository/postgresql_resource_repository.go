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

// PostgreSQLResourceRepository implements resource metadata reads for PostgreSQL.
type PostgreSQLResourceRepository struct {
	db *sql.DB
}

// Get retrieves the authorization metadata of a document. Returns
// ErrResourceNotFound if the document doesn't exist; a resource deleted
// concurrently is a distinct outcome from a denial.
func (p *PostgreSQLResourceRepository) Get(
	ctx context.Context,
	resourceID uuid.UUID,
) (*authzDomain.Resource, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, company_id, sensitivity, downloadable, storage_key, created_at
			  FROM documents WHERE id = $1`

	var resource authzDomain.Resource

	err := querier.QueryRowContext(ctx, query, resourceID).Scan(
		&resource.ID,
		&resource.OwnerID,
		&resource.CompanyID,
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

	return &resource, nil
}

// NewPostgreSQLResourceRepository creates a new PostgreSQL resource repository.
func NewPostgreSQLResourceRepository(db *sql.DB) *PostgreSQLResourceRepository {
	return &PostgreSQLResourceRepository{db: db}
}
