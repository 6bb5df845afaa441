package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/docvault/internal/httputil"
	"github.com/allisson/docvault/internal/session/http/dto"
	sessionUseCase "github.com/allisson/docvault/internal/session/usecase"
	customValidation "github.com/allisson/docvault/internal/validation"
)

// SessionHandler handles HTTP requests for session establishment and rotation.
type SessionHandler struct {
	sessionUseCase sessionUseCase.SessionUseCase
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	useCase sessionUseCase.SessionUseCase,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: useCase,
		logger:         logger,
	}
}

// LoginHandler authenticates a subject and issues an access/refresh pair.
// POST /v1/login - No authentication required (this is the authentication endpoint).
// Returns 201 Created with both tokens and their expiration times.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pair, err := h.sessionUseCase.Login(c.Request.Context(), req.Email, req.Password, time.Now())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTokenPairResponse(pair))
}

// RotateHandler exchanges a refresh token for a new access/refresh pair.
// POST /v1/sessions/rotate - No session authentication; the refresh token is
// the credential. The previous refresh token should be discarded by the caller.
// Returns 201 Created with the new pair.
func (h *SessionHandler) RotateHandler(c *gin.Context) {
	var req dto.RotateSessionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pair, err := h.sessionUseCase.Rotate(c.Request.Context(), req.RefreshToken, time.Now())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTokenPairResponse(pair))
}
