// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
)

// AccountRepository defines read operations for credentialed accounts.
// The account list is loaded once at startup and never mutated.
type AccountRepository interface {
	// List returns all loaded accounts in seed file order.
	List(ctx context.Context) ([]authDomain.Account, error)
}

// AuthUseCase defines business logic operations for per-request authentication.
type AuthUseCase interface {
	// Authenticate verifies a username and plain text password against the
	// loaded accounts. The scan walks the account list in order and returns
	// the first entry whose username and password digest both match.
	//
	// Returns ErrInvalidCredentials if no account matches.
	Authenticate(ctx context.Context, username, password string) (*authDomain.Account, error)
}
