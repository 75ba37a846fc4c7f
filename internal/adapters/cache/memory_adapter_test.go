package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
)

func TestMemoryAdapter_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryAdapter(10)

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 60))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)
}

func TestMemoryAdapter_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryAdapter(10)

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 1))
	require.NoError(t, c.Set(ctx, "long", []byte("v"), 60))

	_, err := c.Get(ctx, "short")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = c.Get(ctx, "short")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)
	_, err = c.Get(ctx, "long")
	assert.NoError(t, err)
}

func TestMemoryAdapter_EvictsLeastRecentlyUsedAtCapacity(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryAdapter(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("q=%d", i), []byte("v"), 300))
	}
	// Touch q=0 so q=1 becomes the oldest entry
	_, err := c.Get(ctx, "q=0")
	require.NoError(t, err)

	for i := 3; i < 50; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("q=%d", i), []byte("v"), 300))
		assert.LessOrEqual(t, c.Len(), 3)
	}

	_, err = c.Get(ctx, "q=1")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)
	_, err = c.Get(ctx, "q=49")
	assert.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestMemoryAdapter_CapIsPerTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryAdapter(2)

	require.NoError(t, c.Set(ctx, "a", []byte("v"), 300))
	require.NoError(t, c.Set(ctx, "b", []byte("v"), 300))
	require.NoError(t, c.Set(ctx, "geo", []byte("v"), 3600))

	assert.Equal(t, 3, c.Len())
	_, err := c.Get(ctx, "a")
	assert.NoError(t, err)
}

func TestMemoryAdapter_DefaultCapacity(t *testing.T) {
	c := NewMemoryAdapter(0)
	assert.Equal(t, DefaultMemoryMaxEntries, c.maxEntries)
}

func TestMemoryAdapter_StoresCopy(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryAdapter(10)

	buf := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", buf, 60))
	buf[0] = 'z'

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
