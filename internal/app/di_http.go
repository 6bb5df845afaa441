package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/allisson/docvault/internal/http"
	"github.com/allisson/docvault/internal/metrics"
	sessionHTTP "github.com/allisson/docvault/internal/session/http"
)

// initHTTPServer creates the HTTP server with the full route table.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	sessionHandler, err := c.SessionHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get session handler for http server: %w", err)
	}

	rotator, err := c.SessionRotator()
	if err != nil {
		return nil, fmt.Errorf("failed to get session rotator for http server: %w", err)
	}

	tokenHandler, err := c.TokenHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get token handler for http server: %w", err)
	}

	contentHandler, err := c.ContentHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get content handler for http server: %w", err)
	}

	var extraMiddleware []gin.HandlerFunc
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		if provider != nil {
			extraMiddleware = append(extraMiddleware,
				metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace))
		}
	}

	router := http.NewRouter(
		http.RouterConfig{
			GinMode:          c.config.GetGinMode(),
			CORSEnabled:      c.config.CORSEnabled,
			CORSAllowOrigins: c.config.CORSAllowOrigins,
		},
		logger,
		func(ctx context.Context) error { return db.PingContext(ctx) },
		extraMiddleware...,
	)

	authMiddleware := sessionHTTP.AuthenticationMiddleware(rotator, logger)

	// Credential endpoints are rate limited by client IP since they run
	// before authentication.
	rateLimitMiddleware := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if c.config.RateLimitEnabled {
		rateLimitMiddleware = sessionHTTP.RateLimitMiddleware(
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			logger,
		)
	}

	v1 := router.Group("/v1")

	v1.POST("/login", rateLimitMiddleware, sessionHandler.LoginHandler)
	v1.POST("/sessions/rotate", rateLimitMiddleware, sessionHandler.RotateHandler)

	v1.POST("/documents/:id/tokens", authMiddleware, tokenHandler.IssueTokenHandler)

	// Content access is gated by the capability token itself, not a session.
	v1.GET("/documents/:id/content", contentHandler.ServeContentHandler)

	return http.NewServer(
		c.config.ServerHost,
		c.config.ServerPort,
		logger,
		router,
	), nil
}
