package domain

import (
	"github.com/slalom/capabilities/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrMissingCredentials indicates the request did not carry credential headers.
	ErrMissingCredentials = errors.Wrap(errors.ErrUnauthorized, "missing credentials")

	// ErrInvalidCredentials indicates the supplied credentials matched no account.
	ErrInvalidCredentials = errors.Wrap(errors.ErrForbidden, "invalid credentials")

	// ErrInsufficientPermissions indicates the account role does not allow the operation.
	ErrInsufficientPermissions = errors.Wrap(errors.ErrForbidden, "insufficient permissions")
)
