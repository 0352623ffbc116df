// Package usecase defines the interfaces and implementations for capability
// catalog use cases. Use cases orchestrate the existence, permission, and
// roster checks that govern consultant registration.
package usecase

import (
	"context"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
	catalogDomain "github.com/slalom/capabilities/internal/catalog/domain"
)

// CapabilityRepository defines the interface for capability catalog storage.
type CapabilityRepository interface {
	List(ctx context.Context) (map[string]*catalogDomain.Capability, error)
	Get(ctx context.Context, name string) (*catalogDomain.Capability, error)
	AddConsultant(ctx context.Context, name, email string) error
	RemoveConsultant(ctx context.Context, name, email string) error
}

// CapabilityUseCase defines the interface for capability catalog business logic.
type CapabilityUseCase interface {
	// List returns every capability keyed by name. Requires no authentication.
	List(ctx context.Context) (map[string]*catalogDomain.Capability, error)
	// Register adds the consultant email to the named capability's roster on
	// behalf of the authenticated account. Checks run in a fixed order:
	// capability existence, then the account's permission to manage the email,
	// then the duplicate check.
	Register(ctx context.Context, name, email string, account *authDomain.Account) error
	// Unregister removes the consultant email from the named capability's
	// roster, mirroring the check order of Register.
	Unregister(ctx context.Context, name, email string, account *authDomain.Account) error
}
