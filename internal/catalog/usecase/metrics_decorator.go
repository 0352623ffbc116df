package usecase

import (
	"context"
	"time"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
	catalogDomain "github.com/slalom/capabilities/internal/catalog/domain"
	"github.com/slalom/capabilities/internal/metrics"
)

// capabilityUseCaseWithMetrics decorates CapabilityUseCase with metrics instrumentation.
type capabilityUseCaseWithMetrics struct {
	next    CapabilityUseCase
	metrics metrics.BusinessMetrics
}

// NewCapabilityUseCaseWithMetrics wraps a CapabilityUseCase with metrics recording.
func NewCapabilityUseCaseWithMetrics(
	useCase CapabilityUseCase,
	m metrics.BusinessMetrics,
) CapabilityUseCase {
	return &capabilityUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// List records metrics for capability listing operations.
func (u *capabilityUseCaseWithMetrics) List(
	ctx context.Context,
) (map[string]*catalogDomain.Capability, error) {
	start := time.Now()
	capabilities, err := u.next.List(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "catalog", "capability_list", status)
	u.metrics.RecordDuration(ctx, "catalog", "capability_list", time.Since(start), status)

	return capabilities, err
}

// Register records metrics for consultant registration operations.
func (u *capabilityUseCaseWithMetrics) Register(
	ctx context.Context,
	name, email string,
	account *authDomain.Account,
) error {
	start := time.Now()
	err := u.next.Register(ctx, name, email, account)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "catalog", "consultant_register", status)
	u.metrics.RecordDuration(ctx, "catalog", "consultant_register", time.Since(start), status)

	return err
}

// Unregister records metrics for consultant unregistration operations.
func (u *capabilityUseCaseWithMetrics) Unregister(
	ctx context.Context,
	name, email string,
	account *authDomain.Account,
) error {
	start := time.Now()
	err := u.next.Unregister(ctx, name, email, account)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "catalog", "consultant_unregister", status)
	u.metrics.RecordDuration(ctx, "catalog", "consultant_unregister", time.Since(start), status)

	return err
}
