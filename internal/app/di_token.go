package app

import (
	"fmt"

	tokenHTTP "github.com/allisson/docvault/internal/token/http"
	tokenService "github.com/allisson/docvault/internal/token/service"
	tokenUseCase "github.com/allisson/docvault/internal/token/usecase"
)

// tokenComponents holds the capability token module wiring.
type tokenComponents struct {
	signer         tokenService.CapabilitySigner
	useCase        tokenUseCase.CapabilityUseCase
	tokenHandler   *tokenHTTP.TokenHandler
	contentHandler *tokenHTTP.ContentHandler
}

// CapabilityUseCase returns the capability token use case instance.
func (c *Container) CapabilityUseCase() (tokenUseCase.CapabilityUseCase, error) {
	if err := c.initToken(); err != nil {
		return nil, err
	}
	return c.tokenComponents.useCase, nil
}

// TokenHandler returns the capability token HTTP handler instance.
func (c *Container) TokenHandler() (*tokenHTTP.TokenHandler, error) {
	if err := c.initToken(); err != nil {
		return nil, err
	}
	return c.tokenComponents.tokenHandler, nil
}

// ContentHandler returns the document content HTTP handler instance.
func (c *Container) ContentHandler() (*tokenHTTP.ContentHandler, error) {
	if err := c.initToken(); err != nil {
		return nil, err
	}
	return c.tokenComponents.contentHandler, nil
}

// initToken wires the capability token module: signer, use case and handlers.
func (c *Container) initToken() error {
	c.tokenInit.Do(func() {
		resolver, err := c.Resolver()
		if err != nil {
			c.initErrors["token"] = fmt.Errorf("failed to get resolver for token module: %w", err)
			return
		}

		resourceRepo, err := c.ResourceRepository()
		if err != nil {
			c.initErrors["token"] = fmt.Errorf("failed to get resource repository for token module: %w", err)
			return
		}

		signer, err := tokenService.NewJWTCapabilitySigner(
			[]byte(c.config.CapabilitySigningKey),
			c.config.PreviewTokenTTL,
			c.config.DownloadTokenTTL,
		)
		if err != nil {
			c.initErrors["token"] = fmt.Errorf("failed to create capability signer: %w", err)
			return
		}
		c.tokenComponents.signer = signer

		useCase := tokenUseCase.NewCapabilityUseCase(resolver, resourceRepo, signer)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["token"] = fmt.Errorf("failed to get business metrics for token module: %w", err)
			return
		}
		if businessMetrics != nil {
			useCase = tokenUseCase.NewCapabilityUseCaseWithMetrics(useCase, businessMetrics)
		}
		c.tokenComponents.useCase = useCase

		contentStore, err := c.ContentStore()
		if err != nil {
			c.initErrors["token"] = fmt.Errorf("failed to get content store for token module: %w", err)
			return
		}

		c.tokenComponents.tokenHandler = tokenHTTP.NewTokenHandler(useCase, c.Logger())
		c.tokenComponents.contentHandler = tokenHTTP.NewContentHandler(
			useCase,
			resourceRepo,
			contentStore,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["token"]; exists {
		return storedErr
	}
	return nil
}
