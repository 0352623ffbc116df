// Package domain defines core domain models and errors for the capability catalog.
package domain

import (
	"github.com/slalom/capabilities/internal/errors"
)

// Capability-specific error definitions.
var (
	// ErrCapabilityNotFound indicates the named capability does not exist in the catalog.
	ErrCapabilityNotFound = errors.Wrap(errors.ErrNotFound, "capability not found")

	// ErrConsultantAlreadyRegistered indicates the consultant is already on the roster.
	ErrConsultantAlreadyRegistered = errors.Wrap(
		errors.ErrConflict,
		"consultant is already registered for this capability",
	)

	// ErrConsultantNotRegistered indicates the consultant is not on the roster.
	ErrConsultantNotRegistered = errors.Wrap(
		errors.ErrConflict,
		"consultant is not registered for this capability",
	)
)
