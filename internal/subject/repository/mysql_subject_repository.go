package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/docvault/internal/database"
	apperrors "github.com/allisson/docvault/internal/errors"
	subjectDomain "github.com/allisson/docvault/internal/subject/domain"
)

// MySQLSubjectRepository implements subject reads for MySQL.
// UUIDs are stored as CHAR(36) strings.
type MySQLSubjectRepository struct {
	db *sql.DB
}

// Create inserts a new subject. Returns ErrSubjectAlreadyExists when the
// email is already taken.
func (m *MySQLSubjectRepository) Create(
	ctx context.Context,
	subject *subjectDomain.Subject,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO subjects (id, company_id, email, password_hash, role, is_active, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		subject.ID.String(),
		subject.CompanyID.String(),
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
func (m *MySQLSubjectRepository) Get(
	ctx context.Context,
	subjectID uuid.UUID,
) (*subjectDomain.Subject, error) {
	query := `SELECT id, company_id, email, password_hash, role, is_active, created_at
			  FROM subjects WHERE id = ?`
	return m.scanOne(ctx, query, subjectID.String())
}

// GetByEmail retrieves a subject by email. Returns ErrSubjectNotFound if not found.
func (m *MySQLSubjectRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*subjectDomain.Subject, error) {
	query := `SELECT id, company_id, email, password_hash, role, is_active, created_at
			  FROM subjects WHERE email = ?`
	return m.scanOne(ctx, query, email)
}

func (m *MySQLSubjectRepository) scanOne(
	ctx context.Context,
	query string,
	arg any,
) (*subjectDomain.Subject, error) {
	querier := database.GetTx(ctx, m.db)

	var (
		subject    subjectDomain.Subject
		idStr      string
		companyStr string
	)

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&idStr,
		&companyStr,
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

	if subject.ID, err = uuid.Parse(idStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse subject id")
	}
	if subject.CompanyID, err = uuid.Parse(companyStr); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse company id")
	}

	return &subject, nil
}

// NewMySQLSubjectRepository creates a new MySQL subject repository.
func NewMySQLSubjectRepository(db *sql.DB) *MySQLSubjectRepository {
	return &MySQLSubjectRepository{db: db}
}
