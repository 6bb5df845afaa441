package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/docvault/internal/errors"
	"github.com/allisson/docvault/internal/httputil"
	sessionService "github.com/allisson/docvault/internal/session/service"
)

// AuthenticationMiddleware authenticates requests via a Bearer access token
// in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies signature, expiry and token use via SessionRotator.ParseAccess
// 3. Stores the authenticated subject (id and role snapshot) in the request context
//
// A refresh token presented here fails with 401: only access tokens carry
// the access token use claim.
func AuthenticationMiddleware(
	rotator sessionService.SessionRotator,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		accessToken := authHeader[len(bearerPrefix):]
		if accessToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		subject, err := rotator.ParseAccess(accessToken, time.Now())
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithSubject(c.Request.Context(), subject)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("subject_id", subject.ID.String()),
			slog.String("role", string(subject.Role)))

		c.Next()
	}
}
