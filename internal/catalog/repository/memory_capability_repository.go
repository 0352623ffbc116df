// Package repository provides in-memory storage for the capability catalog.
//
// The catalog lives entirely in process memory and resets on restart. A single
// RWMutex guards the map so roster checks and mutations are atomic under
// concurrent requests.
package repository

import (
	"context"
	"sync"

	catalogDomain "github.com/slalom/capabilities/internal/catalog/domain"
)

// MemoryCapabilityRepository implements capability storage with an in-memory map.
type MemoryCapabilityRepository struct {
	mu           sync.RWMutex
	capabilities map[string]*catalogDomain.Capability
}

// NewMemoryCapabilityRepository creates a repository preloaded with the given
// capabilities, keyed by name. The inputs are cloned so later roster mutations
// never reach the caller's slices.
func NewMemoryCapabilityRepository(
	capabilities []*catalogDomain.Capability,
) *MemoryCapabilityRepository {
	store := make(map[string]*catalogDomain.Capability, len(capabilities))
	for _, capability := range capabilities {
		store[capability.Name] = capability.Clone()
	}

	return &MemoryCapabilityRepository{capabilities: store}
}

// List returns a snapshot of the catalog keyed by capability name. Entries are
// deep copies, so callers can read them without holding any lock.
func (r *MemoryCapabilityRepository) List(
	ctx context.Context,
) (map[string]*catalogDomain.Capability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*catalogDomain.Capability, len(r.capabilities))
	for name, capability := range r.capabilities {
		snapshot[name] = capability.Clone()
	}

	return snapshot, nil
}

// Get returns a deep copy of the named capability.
func (r *MemoryCapabilityRepository) Get(
	ctx context.Context,
	name string,
) (*catalogDomain.Capability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	capability, ok := r.capabilities[name]
	if !ok {
		return nil, catalogDomain.ErrCapabilityNotFound
	}

	return capability.Clone(), nil
}

// AddConsultant appends the email to the named capability's roster. The
// duplicate check and the append run under the same write lock, so an email
// can never enter the roster twice.
func (r *MemoryCapabilityRepository) AddConsultant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	capability, ok := r.capabilities[name]
	if !ok {
		return catalogDomain.ErrCapabilityNotFound
	}

	if capability.HasConsultant(email) {
		return catalogDomain.ErrConsultantAlreadyRegistered
	}

	capability.Consultants = append(capability.Consultants, email)
	return nil
}

// RemoveConsultant removes the email from the named capability's roster,
// preserving the order of the remaining entries.
func (r *MemoryCapabilityRepository) RemoveConsultant(
	ctx context.Context,
	name, email string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	capability, ok := r.capabilities[name]
	if !ok {
		return catalogDomain.ErrCapabilityNotFound
	}

	for i, consultant := range capability.Consultants {
		if consultant == email {
			capability.Consultants = append(
				capability.Consultants[:i],
				capability.Consultants[i+1:]...,
			)
			return nil
		}
	}

	return catalogDomain.ErrConsultantNotRegistered
}
