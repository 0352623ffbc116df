// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
)

// accountKey is a context key type for storing authenticated accounts.
type accountKey struct{}

// WithAccount stores an authenticated account in the context.
// This is typically called by the authentication middleware after successful credential validation.
func WithAccount(ctx context.Context, account *authDomain.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// GetAccount retrieves an authenticated account from the context.
// Returns (account, true) if an account is present, or (nil, false) if no account was set.
// This is typically called by handlers that need the acting account for permission checks.
func GetAccount(ctx context.Context) (*authDomain.Account, bool) {
	account, ok := ctx.Value(accountKey{}).(*authDomain.Account)
	return account, ok
}
