package app

import (
	"fmt"

	sessionHTTP "github.com/allisson/docvault/internal/session/http"
	sessionService "github.com/allisson/docvault/internal/session/service"
	sessionUseCase "github.com/allisson/docvault/internal/session/usecase"
	subjectRepository "github.com/allisson/docvault/internal/subject/repository"
	subjectService "github.com/allisson/docvault/internal/subject/service"
)

// sessionComponents holds the session module wiring.
type sessionComponents struct {
	subjectRepo     sessionUseCase.SubjectRepository
	passwordService subjectService.PasswordService
	rotator         sessionService.SessionRotator
	useCase         sessionUseCase.SessionUseCase
	handler         *sessionHTTP.SessionHandler
}

// SessionRotator returns the session token rotator instance.
func (c *Container) SessionRotator() (sessionService.SessionRotator, error) {
	if err := c.initSession(); err != nil {
		return nil, err
	}
	return c.sessionComponents.rotator, nil
}

// SessionUseCase returns the session use case instance.
func (c *Container) SessionUseCase() (sessionUseCase.SessionUseCase, error) {
	if err := c.initSession(); err != nil {
		return nil, err
	}
	return c.sessionComponents.useCase, nil
}

// SessionHandler returns the session HTTP handler instance.
func (c *Container) SessionHandler() (*sessionHTTP.SessionHandler, error) {
	if err := c.initSession(); err != nil {
		return nil, err
	}
	return c.sessionComponents.handler, nil
}

// initSession wires the session module: subject repository, password service,
// rotator, use case and handler.
func (c *Container) initSession() error {
	c.sessionInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["session"] = fmt.Errorf("failed to get database for session module: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.sessionComponents.subjectRepo = subjectRepository.NewMySQLSubjectRepository(db)
		case "postgres":
			c.sessionComponents.subjectRepo = subjectRepository.NewPostgreSQLSubjectRepository(db)
		default:
			c.initErrors["session"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
			return
		}

		passwordService, err := subjectService.NewPasswordService()
		if err != nil {
			c.initErrors["session"] = fmt.Errorf("failed to create password service: %w", err)
			return
		}
		c.sessionComponents.passwordService = passwordService

		rotator, err := sessionService.NewJWTSessionRotator(
			[]byte(c.config.SessionSigningKey),
			c.config.SessionAccessTTL,
			c.config.SessionRefreshTTL,
		)
		if err != nil {
			c.initErrors["session"] = fmt.Errorf("failed to create session rotator: %w", err)
			return
		}
		c.sessionComponents.rotator = rotator

		useCase := sessionUseCase.NewSessionUseCase(
			c.sessionComponents.subjectRepo,
			c.sessionComponents.passwordService,
			c.sessionComponents.rotator,
		)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["session"] = fmt.Errorf("failed to get business metrics for session module: %w", err)
			return
		}
		if businessMetrics != nil {
			useCase = sessionUseCase.NewSessionUseCaseWithMetrics(useCase, businessMetrics)
		}

		c.sessionComponents.useCase = useCase
		c.sessionComponents.handler = sessionHTTP.NewSessionHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["session"]; exists {
		return storedErr
	}
	return nil
}
