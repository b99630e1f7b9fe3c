package sessionstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/academic-suite/internal/adapters/memory"
	domainauth "github.com/target/academic-suite/internal/domain/auth"
	"github.com/target/academic-suite/internal/mocks"
	"github.com/target/academic-suite/internal/ports"
	"go.uber.org/mock/gomock"
)

const slot = "academicSuite_user:client-1"

var teacher = domainauth.Identity{
	ID:          "3",
	DisplayName: "Dr. Emily Rodriguez",
	Email:       "teacher@university.edu",
	Role:        domainauth.RoleTeacher,
	Department:  "Mathematics",
	EmployeeID:  "EMP003",
}

func newMemoryStore(t *testing.T) (*Store, *memory.SlotBackend) {
	t.Helper()
	backend := memory.NewSlotBackend()
	store, err := New(Options{Backend: backend})
	require.NoError(t, err)
	return store, backend
}

func TestNew_RequiresBackend(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newMemoryStore(t)

	require.NoError(t, store.Save(ctx, slot, teacher))

	res, err := store.Load(ctx, slot)
	require.NoError(t, err)
	got, ok := res.Identity()
	require.True(t, ok)
	assert.Equal(t, teacher, got)
}

func TestStore_LoadEmpty(t *testing.T) {
	store, _ := newMemoryStore(t)

	res, err := store.Load(context.Background(), slot)
	require.NoError(t, err)
	assert.False(t, res.IsPresent())
}

func TestStore_LoadCorruptClearsSlot(t *testing.T) {
	ctx := context.Background()
	store, backend := newMemoryStore(t)

	for _, raw := range []string{`{not json`, `{"id":"9","email":"x@y.z","name":"X","role":"Janitor"}`} {
		require.NoError(t, backend.Set(ctx, slot, []byte(raw)))

		res, err := store.Load(ctx, slot)
		require.NoError(t, err)
		assert.False(t, res.IsPresent())

		_, err = backend.Get(ctx, slot)
		assert.ErrorIs(t, err, ports.ErrSlotEmpty, "corrupt value should be removed: %s", raw)
	}
}

func TestStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store, backend := newMemoryStore(t)

	require.NoError(t, store.Save(ctx, slot, teacher))
	require.NoError(t, store.Clear(ctx, slot))
	require.NoError(t, store.Clear(ctx, slot))
	assert.Equal(t, 0, backend.Len())
}

func TestStore_BackendErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSlotBackend(ctrl)
	store, err := New(Options{Backend: backend})
	require.NoError(t, err)
	ctx := context.Background()
	boom := errors.New("connection refused")

	backend.EXPECT().Get(gomock.Any(), slot).Return(nil, boom)
	_, err = store.Load(ctx, slot)
	require.ErrorIs(t, err, boom)

	backend.EXPECT().Set(gomock.Any(), slot, gomock.Any()).Return(boom)
	require.ErrorIs(t, store.Save(ctx, slot, teacher), boom)

	backend.EXPECT().Delete(gomock.Any(), slot).Return(boom)
	require.ErrorIs(t, store.Clear(ctx, slot), boom)
}

func TestStore_CorruptClearFailureStillAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSlotBackend(ctrl)
	store, err := New(Options{Backend: backend})
	require.NoError(t, err)

	backend.EXPECT().Get(gomock.Any(), slot).Return([]byte("garbage"), nil)
	backend.EXPECT().Delete(gomock.Any(), slot).Return(errors.New("read-only"))

	res, err := store.Load(context.Background(), slot)
	require.NoError(t, err)
	assert.False(t, res.IsPresent())
}
