// Package http provides HTTP handlers for capability token issuance and
// token-gated document content access.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/docvault/internal/errors"
	"github.com/allisson/docvault/internal/httputil"
	sessionHTTP "github.com/allisson/docvault/internal/session/http"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
	"github.com/allisson/docvault/internal/token/http/dto"
	tokenUseCase "github.com/allisson/docvault/internal/token/usecase"
	customValidation "github.com/allisson/docvault/internal/validation"
)

// TokenHandler handles HTTP requests for capability token issuance.
type TokenHandler struct {
	capabilityUseCase tokenUseCase.CapabilityUseCase
	logger            *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	useCase tokenUseCase.CapabilityUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		capabilityUseCase: useCase,
		logger:            logger,
	}
}

// IssueTokenHandler issues a capability token for a document.
// POST /v1/documents/:id/tokens - Requires session authentication.
// The effective permission is resolved before minting; an insufficient
// permission returns 403 and a missing document 404.
// Returns 201 Created with token and expiration time.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	subject, ok := sessionHTTP.GetSubject(c.Request.Context())
	if !ok || subject == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid document id format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.IssueCapabilityTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	issued, err := h.capabilityUseCase.Issue(
		c.Request.Context(),
		*subject,
		resourceID,
		tokenDomain.Purpose(req.Purpose),
		time.Now(),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewIssueCapabilityTokenResponse(issued))
}
