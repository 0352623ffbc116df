// Package usecase implements business logic orchestration for the capability
// catalog.
package usecase

import (
	"context"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
	catalogDomain "github.com/slalom/capabilities/internal/catalog/domain"
)

// capabilityUseCase implements the CapabilityUseCase interface.
type capabilityUseCase struct {
	capabilityRepo CapabilityRepository
}

// List returns every capability keyed by name.
func (u *capabilityUseCase) List(
	ctx context.Context,
) (map[string]*catalogDomain.Capability, error) {
	return u.capabilityRepo.List(ctx)
}

// Register adds the consultant email to the named capability's roster.
func (u *capabilityUseCase) Register(
	ctx context.Context,
	name, email string,
	account *authDomain.Account,
) error {
	// The existence check runs before the permission check, so an unknown
	// capability reports not found regardless of the caller's role.
	if _, err := u.capabilityRepo.Get(ctx, name); err != nil {
		return err
	}

	if !account.CanManage(email) {
		return authDomain.ErrInsufficientPermissions
	}

	return u.capabilityRepo.AddConsultant(ctx, name, email)
}

// Unregister removes the consultant email from the named capability's roster.
func (u *capabilityUseCase) Unregister(
	ctx context.Context,
	name, email string,
	account *authDomain.Account,
) error {
	if _, err := u.capabilityRepo.Get(ctx, name); err != nil {
		return err
	}

	if !account.CanManage(email) {
		return authDomain.ErrInsufficientPermissions
	}

	return u.capabilityRepo.RemoveConsultant(ctx, name, email)
}

// NewCapabilityUseCase creates a new capability use case instance.
func NewCapabilityUseCase(capabilityRepo CapabilityRepository) CapabilityUseCase {
	return &capabilityUseCase{capabilityRepo: capabilityRepo}
}
