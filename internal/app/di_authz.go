package app

import (
	"fmt"

	authzRepository "github.com/allisson/docvault/internal/authz/repository"
	authzUseCase "github.com/allisson/docvault/internal/authz/usecase"
)

// authzComponents holds the authorization module wiring.
type authzComponents struct {
	grantRepo    authzUseCase.GrantRepository
	resourceRepo authzUseCase.ResourceRepository
	resolver     authzUseCase.Resolver
}

// Resolver returns the permission resolver instance.
func (c *Container) Resolver() (authzUseCase.Resolver, error) {
	if err := c.initAuthz(); err != nil {
		return nil, err
	}
	return c.authzComponents.resolver, nil
}

// GrantRepository returns the grant repository instance.
func (c *Container) GrantRepository() (authzUseCase.GrantRepository, error) {
	if err := c.initAuthz(); err != nil {
		return nil, err
	}
	return c.authzComponents.grantRepo, nil
}

// ResourceRepository returns the resource metadata repository instance.
func (c *Container) ResourceRepository() (authzUseCase.ResourceRepository, error) {
	if err := c.initAuthz(); err != nil {
		return nil, err
	}
	return c.authzComponents.resourceRepo, nil
}

// initAuthz wires the authorization module: repositories and resolver, with
// the metrics decorator when metrics are enabled.
func (c *Container) initAuthz() error {
	c.authzInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["authz"] = fmt.Errorf("failed to get database for authz module: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.authzComponents.grantRepo = authzRepository.NewMySQLGrantRepository(db)
			c.authzComponents.resourceRepo = authzRepository.NewMySQLResourceRepository(db)
		case "postgres":
			c.authzComponents.grantRepo = authzRepository.NewPostgreSQLGrantRepository(db)
			c.authzComponents.resourceRepo = authzRepository.NewPostgreSQLResourceRepository(db)
		default:
			c.initErrors["authz"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
			return
		}

		resolver := authzUseCase.NewPermissionResolver(
			c.authzComponents.grantRepo,
			c.authzComponents.resourceRepo,
		)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["authz"] = fmt.Errorf("failed to get business metrics for authz module: %w", err)
			return
		}
		if businessMetrics != nil {
			resolver = authzUseCase.NewResolverWithMetrics(resolver, businessMetrics)
		}

		c.authzComponents.resolver = resolver
	})
	if storedErr, exists := c.initErrors["authz"]; exists {
		return storedErr
	}
	return nil
}
