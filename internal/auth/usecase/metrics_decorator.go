package usecase

import (
	"context"
	"time"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
	"github.com/slalom/capabilities/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for authentication operations.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	username, password string,
) (*authDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Authenticate(ctx, username, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return account, err
}
