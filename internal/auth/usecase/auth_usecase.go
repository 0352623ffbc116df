package usecase

import (
	"context"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
	authService "github.com/slalom/capabilities/internal/auth/service"
)

// authUseCase implements AuthUseCase with a linear scan over loaded accounts.
type authUseCase struct {
	accountRepo     AccountRepository
	passwordService authService.PasswordService
}

// Authenticate verifies the supplied credentials against each loaded account
// in order. An entry matches when both the username and the password digest
// match; entries with the same username but a different digest are skipped.
func (a *authUseCase) Authenticate(
	ctx context.Context,
	username, password string,
) (*authDomain.Account, error) {
	accounts, err := a.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		account := &accounts[i]
		if account.Username == username &&
			a.passwordService.VerifyPassword(password, account.PasswordHash) {
			return account, nil
		}
	}

	return nil, authDomain.ErrInvalidCredentials
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	accountRepo AccountRepository,
	passwordService authService.PasswordService,
) AuthUseCase {
	return &authUseCase{
		accountRepo:     accountRepo,
		passwordService: passwordService,
	}
}
