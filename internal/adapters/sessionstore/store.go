// Package sessionstore turns a raw slot backend into a self-healing identity store.
package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
	"github.com/target/academic-suite/internal/ports"
)

// Store implements ports.SessionStore on top of any ports.SlotBackend.
type Store struct {
	backend ports.SlotBackend
	logger  *slog.Logger
}

// Options configures a Store.
type Options struct {
	Backend ports.SlotBackend
	Logger  *slog.Logger
}

// New creates a Store. Backend is required.
func New(opts Options) (*Store, error) {
	if opts.Backend == nil {
		return nil, errors.New("session store: backend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: opts.Backend, logger: logger.With("component", "session_store")}, nil
}

// Save overwrites the slot with the encoded identity.
func (s *Store) Save(ctx context.Context, slot string, id domainauth.Identity) error {
	data, err := domainauth.EncodeIdentity(id)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, slot, data); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}

// Load reads the slot. Corrupt values are removed and reported as Absent.
func (s *Store) Load(ctx context.Context, slot string) (domainauth.LoadResult, error) {
	data, err := s.backend.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, ports.ErrSlotEmpty) {
			return domainauth.Absent(), nil
		}
		return domainauth.Absent(), fmt.Errorf("load slot %s: %w", slot, err)
	}

	id, err := domainauth.DecodeIdentity(data)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt session slot", "slot", slot, "error", err)
		if delErr := s.backend.Delete(ctx, slot); delErr != nil {
			s.logger.WarnContext(ctx, "clear corrupt session slot failed", "slot", slot, "error", delErr)
		}
		return domainauth.Absent(), nil
	}
	return domainauth.Present(id), nil
}

// Clear removes the slot.
func (s *Store) Clear(ctx context.Context, slot string) error {
	if err := s.backend.Delete(ctx, slot); err != nil {
		return fmt.Errorf("clear slot %s: %w", slot, err)
	}
	return nil
}
