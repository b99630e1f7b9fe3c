package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/academic-suite/internal/ports"
)

func TestSlotBackend(t *testing.T) {
	ctx := context.Background()
	b := NewSlotBackend()

	_, err := b.Get(ctx, "k")
	require.ErrorIs(t, err, ports.ErrSlotEmpty)

	value := []byte("v1")
	require.NoError(t, b.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got), "stored value must not alias the caller's slice")
	assert.Equal(t, 1, b.Len())

	require.NoError(t, b.Delete(ctx, "k"))
	require.NoError(t, b.Delete(ctx, "k"))
	assert.Equal(t, 0, b.Len())
}
