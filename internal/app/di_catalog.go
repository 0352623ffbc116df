package app

import (
	"fmt"

	catalogDomain "github.com/slalom/capabilities/internal/catalog/domain"
	catalogHTTP "github.com/slalom/capabilities/internal/catalog/http"
	catalogRepository "github.com/slalom/capabilities/internal/catalog/repository"
	catalogUseCase "github.com/slalom/capabilities/internal/catalog/usecase"
)

// CapabilityRepository returns the in-memory capability catalog.
func (c *Container) CapabilityRepository() catalogUseCase.CapabilityRepository {
	c.capabilityRepoInit.Do(func() {
		c.capabilityRepo = c.initCapabilityRepository()
	})
	return c.capabilityRepo
}

// CapabilityUseCase returns the capability catalog use case.
func (c *Container) CapabilityUseCase() (catalogUseCase.CapabilityUseCase, error) {
	var err error
	c.capabilityUseCaseInit.Do(func() {
		c.capabilityUseCase, err = c.initCapabilityUseCase()
		if err != nil {
			c.initErrors["capabilityUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["capabilityUseCase"]; exists {
		return nil, storedErr
	}
	return c.capabilityUseCase, nil
}

// CapabilityHandler returns the HTTP handler for capability operations.
func (c *Container) CapabilityHandler() (*catalogHTTP.CapabilityHandler, error) {
	var err error
	c.capabilityHandlerInit.Do(func() {
		c.capabilityHandler, err = c.initCapabilityHandler()
		if err != nil {
			c.initErrors["capabilityHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["capabilityHandler"]; exists {
		return nil, storedErr
	}
	return c.capabilityHandler, nil
}

// initCapabilityRepository creates the in-memory catalog preloaded with the
// standard consulting capabilities.
func (c *Container) initCapabilityRepository() catalogUseCase.CapabilityRepository {
	return catalogRepository.NewMemoryCapabilityRepository(catalogDomain.SeedCapabilities())
}

// initCapabilityUseCase creates the capability use case with all its dependencies.
func (c *Container) initCapabilityUseCase() (catalogUseCase.CapabilityUseCase, error) {
	capabilityRepo := c.CapabilityRepository()

	baseUseCase := catalogUseCase.NewCapabilityUseCase(capabilityRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for capability use case: %w", err)
		}
		return catalogUseCase.NewCapabilityUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCapabilityHandler creates the capability HTTP handler with all its dependencies.
func (c *Container) initCapabilityHandler() (*catalogHTTP.CapabilityHandler, error) {
	capabilityUseCase, err := c.CapabilityUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get capability use case for capability handler: %w", err)
	}

	logger := c.Logger()

	return catalogHTTP.NewCapabilityHandler(capabilityUseCase, logger), nil
}
