package redis

// Package redis provides Redis-based adapters for the academic suite.

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/target/academic-suite/internal/ports"
)

// SlotBackend stores session slot values as plain Redis strings.
// Slots carry no TTL; they live until cleared.
type SlotBackend struct {
	client redis.UniversalClient
}

// NewSlotBackend creates a Redis-backed slot store.
func NewSlotBackend(client redis.UniversalClient) *SlotBackend {
	return &SlotBackend{client: client}
}

func (s *SlotBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ports.ErrSlotEmpty
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrSlotEmpty
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

func (s *SlotBackend) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("slot key cannot be empty")
	}
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *SlotBackend) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to delete
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
