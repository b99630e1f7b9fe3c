package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

// ErrSlotEmpty is returned by a SlotBackend when nothing is stored under a key.
var ErrSlotEmpty = errors.New("slot empty")

// IdentityDirectory resolves an email to a known identity.
// Lookups are exact and case-sensitive and never fail with an error.
type IdentityDirectory interface {
	Resolve(email string) (domainauth.Identity, bool)
}

// SessionStore persists at most one identity per client slot.
type SessionStore interface {
	// Save overwrites the slot with the identity.
	Save(ctx context.Context, slot string, id domainauth.Identity) error
	// Load returns Absent for an empty slot and for undecodable data, clearing the latter.
	// Only backend I/O failures are returned as errors.
	Load(ctx context.Context, slot string) (domainauth.LoadResult, error)
	// Clear removes the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context, slot string) error
}

// SlotBackend is raw key/value storage underneath a SessionStore.
type SlotBackend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
