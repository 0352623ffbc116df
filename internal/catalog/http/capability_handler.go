// Package http provides HTTP handlers for capability catalog operations.
// Listing is open; roster changes require an authenticated account placed in
// the request context by the authentication middleware.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/slalom/capabilities/internal/auth/http"
	"github.com/slalom/capabilities/internal/catalog/http/dto"
	catalogUseCase "github.com/slalom/capabilities/internal/catalog/usecase"
	apperrors "github.com/slalom/capabilities/internal/errors"
	"github.com/slalom/capabilities/internal/httputil"
	customValidation "github.com/slalom/capabilities/internal/validation"
)

// CapabilityHandler handles HTTP requests for capability catalog operations.
type CapabilityHandler struct {
	capabilityUseCase catalogUseCase.CapabilityUseCase
	logger            *slog.Logger
}

// NewCapabilityHandler creates a new capability handler with required dependencies.
func NewCapabilityHandler(
	capabilityUseCase catalogUseCase.CapabilityUseCase,
	logger *slog.Logger,
) *CapabilityHandler {
	return &CapabilityHandler{
		capabilityUseCase: capabilityUseCase,
		logger:            logger,
	}
}

// ListHandler returns every capability keyed by name.
// GET /capabilities - No authentication required.
// Returns 200 OK with a JSON object mapping capability names to details.
func (h *CapabilityHandler) ListHandler(c *gin.Context) {
	capabilities, err := h.capabilityUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCapabilitiesToListResponse(capabilities))
}

// RegisterHandler adds a consultant to a capability's roster.
// POST /capabilities/:name/register?email=... - Requires authentication.
// Returns 200 OK with a confirmation message.
func (h *CapabilityHandler) RegisterHandler(c *gin.Context) {
	name := c.Param("name")

	account, ok := authHTTP.GetAccount(c.Request.Context())
	if !ok || account == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	email, ok := h.extractEmail(c)
	if !ok {
		return
	}

	if err := h.capabilityUseCase.Register(c.Request.Context(), name, email, account); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Registered %s for %s", email, name),
	})
}

// UnregisterHandler removes a consultant from a capability's roster.
// DELETE /capabilities/:name/unregister?email=... - Requires authentication.
// Returns 200 OK with a confirmation message.
func (h *CapabilityHandler) UnregisterHandler(c *gin.Context) {
	name := c.Param("name")

	account, ok := authHTTP.GetAccount(c.Request.Context())
	if !ok || account == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	email, ok := h.extractEmail(c)
	if !ok {
		return
	}

	if err := h.capabilityUseCase.Unregister(c.Request.Context(), name, email, account); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// extractEmail resolves the consultant email from the query parameter or the
// JSON body and validates it. The query parameter wins when both are present.
// Writes a validation error response and returns false when no usable email
// is present.
func (h *CapabilityHandler) extractEmail(c *gin.Context) (string, bool) {
	email := c.Query("email")

	if email == "" && c.Request.ContentLength != 0 {
		var req dto.ConsultantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return "", false
		}
		email = req.Email
	}

	req := dto.ConsultantRequest{Email: email}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", false
	}

	return email, true
}
