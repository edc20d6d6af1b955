package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	s := New(time.Minute)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", 42)
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	s.Set("k", "replaced")
	v, ok = s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "replaced", v)
}

func TestStoreExpiry(t *testing.T) {
	s := New(time.Minute)
	s.Set("k", 1)

	// Shift the clock past the TTL instead of sleeping.
	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, ok := s.Get("k")
	assert.False(t, ok)

	// Expired entries still occupy a slot until overwritten or deleted.
	assert.Equal(t, 1, s.Len())
}

func TestStoreDelete(t *testing.T) {
	s := New(time.Minute)
	s.Set("a", 1)
	s.Set("b", 2)
	require.Equal(t, 2, s.Len())

	s.Delete("a")
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("a")
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	s.Delete("a")
	assert.Equal(t, 1, s.Len())
}
