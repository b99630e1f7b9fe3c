package memory

// Package memory provides a process-local slot backend for development and tests.

import (
	"context"
	"sync"

	"github.com/target/academic-suite/internal/ports"
)

// SlotBackend keeps slot values in a map. Values are copied on the way in and out.
type SlotBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewSlotBackend creates an empty in-memory backend.
func NewSlotBackend() *SlotBackend {
	return &SlotBackend{slots: make(map[string][]byte)}
}

func (m *SlotBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	if !ok {
		return nil, ports.ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

func (m *SlotBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *SlotBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// Len returns the number of occupied slots.
func (m *SlotBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.slots)
}
