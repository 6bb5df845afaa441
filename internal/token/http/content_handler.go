package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authzUseCase "github.com/allisson/docvault/internal/authz/usecase"
	apperrors "github.com/allisson/docvault/internal/errors"
	"github.com/allisson/docvault/internal/httputil"
	"github.com/allisson/docvault/internal/storage"
	tokenDomain "github.com/allisson/docvault/internal/token/domain"
	tokenUseCase "github.com/allisson/docvault/internal/token/usecase"
)

// capabilityTokenHeader carries the capability token when the client prefers
// a header over the token query parameter.
const capabilityTokenHeader = "X-Capability-Token"

// ContentHandler serves document bytes gated by a capability token. The token
// is the sole credential on this endpoint: no session is required, which is
// what lets previews and downloads be delegated to renderers and proxies.
type ContentHandler struct {
	capabilityUseCase tokenUseCase.CapabilityUseCase
	resourceRepo      authzUseCase.ResourceRepository
	contentStore      storage.ContentStore
	logger            *slog.Logger
}

// NewContentHandler creates a new content handler with required dependencies.
func NewContentHandler(
	useCase tokenUseCase.CapabilityUseCase,
	resourceRepo authzUseCase.ResourceRepository,
	contentStore storage.ContentStore,
	logger *slog.Logger,
) *ContentHandler {
	return &ContentHandler{
		capabilityUseCase: useCase,
		resourceRepo:      resourceRepo,
		contentStore:      contentStore,
		logger:            logger,
	}
}

// ServeContentHandler streams document content for a valid capability token.
// GET /v1/documents/:id/content?token=...&purpose=preview|download
//
// The token is read from the X-Capability-Token header first, then from the
// token query parameter. The purpose parameter defaults to preview and must
// match the purpose the token was minted for. Download responses carry an
// attachment disposition.
//
// Headers are written only after the content reader is open, so a failed
// lookup never produces partial content.
func (h *ContentHandler) ServeContentHandler(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid document id format: must be a valid UUID"),
			h.logger)
		return
	}

	token := c.GetHeader(capabilityTokenHeader)
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		h.logger.Debug("content access failed: missing capability token")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	purpose := tokenDomain.Purpose(c.DefaultQuery("purpose", string(tokenDomain.PurposePreview)))
	if !purpose.Valid() {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid purpose: must be preview or download"),
			h.logger)
		return
	}

	claims, err := h.capabilityUseCase.Verify(token, resourceID, purpose, time.Now())
	if err != nil {
		// All verification failures collapse to the same 401 response.
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	resource, err := h.resourceRepo.Get(c.Request.Context(), resourceID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if purpose == tokenDomain.PurposeDownload && !resource.Downloadable {
		httputil.HandleErrorGin(c, tokenDomain.ErrNotDownloadable, h.logger)
		return
	}

	attrs, err := h.contentStore.Attributes(c.Request.Context(), resource.StorageKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	reader, err := h.contentStore.NewReader(c.Request.Context(), resource.StorageKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	h.logger.Debug("serving document content",
		slog.String("subject_id", claims.SubjectID.String()),
		slog.String("resource_id", resourceID.String()),
		slog.String("purpose", string(purpose)))

	contentType := attrs.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	extraHeaders := map[string]string{}
	if purpose == tokenDomain.PurposeDownload {
		extraHeaders["Content-Disposition"] = fmt.Sprintf("attachment; filename=%q", resourceID.String())
	}

	c.DataFromReader(http.StatusOK, attrs.Size, contentType, reader, extraHeaders)
}
