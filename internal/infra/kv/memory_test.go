//go:build unit

package kv_test

import (
	"context"
	"testing"

	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get distinguishes absent from empty", func(t *testing.T) {
		store := kv.NewMemoryStore()

		_, found, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, store.Put(ctx, "empty", []byte{}))
		value, found, err := store.Get(ctx, "empty")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, value)
	})

	t.Run("Put overwrites unconditionally", func(t *testing.T) {
		store := kv.NewMemoryStore()

		require.NoError(t, store.Put(ctx, "k", []byte("one")))
		require.NoError(t, store.Put(ctx, "k", []byte("two")))

		value, found, err := store.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("two"), value)
	})

	t.Run("Get returns a copy, not an alias", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "k", []byte("abc")))

		value, _, err := store.Get(ctx, "k")
		require.NoError(t, err)
		value[0] = 'z'

		again, _, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("CompareAndSwap with nil expected requires absence", func(t *testing.T) {
		store := kv.NewMemoryStore()

		require.NoError(t, store.CompareAndSwap(ctx, "k", nil, []byte("v1")))

		err := store.CompareAndSwap(ctx, "k", nil, []byte("v2"))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("CompareAndSwap succeeds only against the current value", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "k", []byte("v1")))

		require.NoError(t, store.CompareAndSwap(ctx, "k", []byte("v1"), []byte("v2")))

		// Stale expected value: the write must be rejected.
		err := store.CompareAndSwap(ctx, "k", []byte("v1"), []byte("v3"))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))

		value, _, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), value)
	})
}
