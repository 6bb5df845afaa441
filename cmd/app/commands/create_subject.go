package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/docvault/internal/app"
	authzDomain "github.com/allisson/docvault/internal/authz/domain"
	"github.com/allisson/docvault/internal/config"
	subjectDomain "github.com/allisson/docvault/internal/subject/domain"
	subjectRepository "github.com/allisson/docvault/internal/subject/repository"
	subjectService "github.com/allisson/docvault/internal/subject/service"
)

// subjectCreator persists new subjects.
type subjectCreator interface {
	Create(ctx context.Context, subject *subjectDomain.Subject) error
}

// RunCreateSubject creates a subject with an argon2id password hash.
// This is the bootstrap path: the HTTP surface exposes no registration
// endpoint, so operators seed subjects from the CLI.
func RunCreateSubject(
	ctx context.Context,
	email, password, companyID, role string,
	active bool,
) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	parsedCompanyID, err := uuid.Parse(companyID)
	if err != nil {
		return fmt.Errorf("invalid company-id: must be a valid UUID")
	}

	subjectRole := authzDomain.Role(role)
	if _, err := authzDomain.RoleCapabilities(subjectRole); err != nil {
		return fmt.Errorf("invalid role %q: %w", role, err)
	}

	db, err := container.DB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	var repo subjectCreator
	switch cfg.DBDriver {
	case "mysql":
		repo = subjectRepository.NewMySQLSubjectRepository(db)
	case "postgres":
		repo = subjectRepository.NewPostgreSQLSubjectRepository(db)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}

	passwordService, err := subjectService.NewPasswordService()
	if err != nil {
		return fmt.Errorf("failed to create password service: %w", err)
	}

	passwordHash, err := passwordService.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	subject := &subjectDomain.Subject{
		ID:           uuid.New(),
		CompanyID:    parsedCompanyID,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         subjectRole,
		IsActive:     active,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.Create(ctx, subject); err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}

	logger.Info("subject created",
		slog.String("subject_id", subject.ID.String()),
		slog.String("email", subject.Email),
		slog.String("role", string(subject.Role)),
	)

	return nil
}
