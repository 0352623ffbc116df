package app

import (
	"fmt"

	authRepository "github.com/slalom/capabilities/internal/auth/repository"
	authService "github.com/slalom/capabilities/internal/auth/service"
	authUseCase "github.com/slalom/capabilities/internal/auth/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = c.initPasswordService()
	})
	return c.passwordService
}

// AccountRepository returns the practice lead account repository.
func (c *Container) AccountRepository() (authUseCase.AccountRepository, error) {
	var err error
	c.accountRepoInit.Do(func() {
		c.accountRepo, err = c.initAccountRepository()
		if err != nil {
			c.initErrors["accountRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accountRepo"]; exists {
		return nil, storedErr
	}
	return c.accountRepo, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// initPasswordService creates the password hashing service.
func (c *Container) initPasswordService() authService.PasswordService {
	return authService.NewPasswordService()
}

// initAccountRepository loads the practice lead accounts from the configured file.
func (c *Container) initAccountRepository() (authUseCase.AccountRepository, error) {
	repo, err := authRepository.NewJSONAccountRepository(c.config.PracticeLeadsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load practice lead accounts: %w", err)
	}
	return repo, nil
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	accountRepo, err := c.AccountRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for auth use case: %w", err)
	}

	passwordService := c.PasswordService()

	baseUseCase := authUseCase.NewAuthUseCase(accountRepo, passwordService)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
