// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
	authUseCase "github.com/slalom/capabilities/internal/auth/usecase"
	"github.com/slalom/capabilities/internal/httputil"
)

// Credential header names checked on every authenticated request.
const (
	// HeaderUsername carries the account username.
	HeaderUsername = "X-Username"

	// HeaderPassword carries the plain text password.
	HeaderPassword = "X-Password"
)

// AuthenticationMiddleware provides authentication via credential headers.
//
// The middleware:
// 1. Extracts the username and password from the X-Username and X-Password headers
// 2. Verifies the credentials using authUseCase.Authenticate()
// 3. Stores the authenticated account in the request context
// 4. Allows downstream handlers to access the account via GetAccount()
//
// Credentials are checked on every request; there is no session or token.
//
// Error handling:
//   - Missing either credential header → 401 Unauthorized
//   - Credentials match no account → 403 Forbidden (from AuthUseCase.Authenticate)
//   - Other errors → 500 Internal Server Error
//
// Usage:
//
//	router.POST("/capabilities/:name/register",
//	    AuthenticationMiddleware(authUseCase, logger),
//	    handler)
func AuthenticationMiddleware(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract credential headers
		username := c.GetHeader(HeaderUsername)
		password := c.GetHeader(HeaderPassword)
		if username == "" || password == "" {
			logger.Debug("authentication failed: missing credential headers")
			httputil.HandleErrorGin(c, authDomain.ErrMissingCredentials, logger)
			c.Abort()
			return
		}

		// Verify the credentials
		account, err := authUseCase.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("username", username),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated account in context
		ctx := WithAccount(c.Request.Context(), account)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("username", account.Username),
			slog.String("role", string(account.Role)))

		// Continue to next handler
		c.Next()
	}
}
