// Package repository provides SQL implementations of subject reads.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/docvault/internal/database"
	apperrors "github.com/allisson/docvault/internal/errors"
	subjectDomain "github.com/allisson/docvault/internal/subject/domain"
)

// PostgreSQLSubjectRepository implements subject reads for PostgreSQL.
type PostgreSQLSubjectRepository struct {
	db *sql.DB
}

// Create inserts a new subject. Returns ErrSubjectAlreadyExists when the
// email is already taken.
func (p *PostgreSQLSubjectRepository) Create(
	ctx context.Context,
	subject *subjectDomain.Subject,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO subjects (id, company_id, email, password_hash, role, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query,
		subject.ID,
		subject.CompanyID,
		subject.Email,
		subject.PasswordHash,
		subject.Role,
		subject.IsActive,
		subject.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return subjectDomain.ErrSubjectAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create subject")
	}
	return nil
}

// Get retrieves a subject by ID. Returns ErrSubjectNotFound if not found.
// Used at rotation time so role changes take effect on the next rotation.
func (p *PostgreSQLSubjectRepository) Get(
	ctx context.Context,
	subjectID uuid.UUID,
) (*subjectDomain.Subject, error) {
	query := `SELECT id, company_id, email, password_hash, role, is_active, created_at
			  FROM subjects WHERE id = $1`
	return p.scanOne(ctx, query, subjectID)
}

// GetByEmail retrieves a subject by email. Returns ErrSubjectNotFound if not found.
func (p *PostgreSQLSubjectRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*subjectDomain.Subject, error) {
	query := `SELECT id, company_id, email, password_hash, role, is_active, created_at
			  FROM subjects WHERE email = $1`
	return p.scanOne(ctx, query, email)
}

func (p *PostgreSQLSubjectRepository) scanOne(
	ctx context.Context,
	query string,
	arg any,
) (*subjectDomain.Subject, error) {
	querier := database.GetTx(ctx, p.db)

	var subject subjectDomain.Subject

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&subject.ID,
		&subject.CompanyID,
		&subject.Email,
		&subject.PasswordHash,
		&subject.Role,
		&subject.IsActive,
		&subject.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, subjectDomain.ErrSubjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get subject")
	}

	return &subject, nil
}

// NewPostgreSQLSubjectRepository creates a new PostgreSQL subject repository.
func NewPostgreSQLSubjectRepository(db *sql.DB) *PostgreSQLSubjectRepository {
	return &PostgreSQLSubjectRepository{db: db}
}

// isUniqueViolation checks if the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint"
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry") ||
		strings.Contains(errMsg, "1062")
}
