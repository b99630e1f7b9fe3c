package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
	"github.com/target/academic-suite/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityDirectory = MapDirectory(nil)
	_ ports.SessionStore      = (*MemorySessionStore)(nil)
)

// MapDirectory resolves identities from a map keyed by exact email.
type MapDirectory map[string]domainauth.Identity

// Resolve implements ports.IdentityDirectory.
func (d MapDirectory) Resolve(email string) (domainauth.Identity, bool) {
	id, ok := d[email]
	return id, ok
}

// NewMapDirectory indexes identities by email.
func NewMapDirectory(ids ...domainauth.Identity) MapDirectory {
	d := make(MapDirectory, len(ids))
	for _, id := range ids {
		d[id.Email] = id
	}
	return d
}

// MemorySessionStore is an in-memory session store for unit tests.
// The Err fields force the matching operation to fail.
type MemorySessionStore struct {
	SaveErr  error
	LoadErr  error
	ClearErr error

	mu     sync.Mutex
	slots  map[string]domainauth.Identity
	saves  int
	clears int
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{slots: make(map[string]domainauth.Identity)}
}

func (m *MemorySessionStore) Save(_ context.Context, slot string, id domainauth.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.slots[slot] = id
	return nil
}

func (m *MemorySessionStore) Load(_ context.Context, slot string) (domainauth.LoadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return domainauth.Absent(), m.LoadErr
	}
	id, ok := m.slots[slot]
	if !ok {
		return domainauth.Absent(), nil
	}
	return domainauth.Present(id), nil
}

func (m *MemorySessionStore) Clear(_ context.Context, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	delete(m.slots, slot)
	return nil
}

// Peek returns the stored identity without going through Load.
func (m *MemorySessionStore) Peek(slot string) (domainauth.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.slots[slot]
	return id, ok
}

// Saves returns how many times Save was called.
func (m *MemorySessionStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Clears returns how many times Clear was called.
func (m *MemorySessionStore) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}
