package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	r, err := NewRedis("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRedis_SetGetDelete(t *testing.T) {
	r := newTestRedis(t)

	r.Set("k", []byte("v"), time.Minute)
	got, ok := r.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	r.Delete("k")
	_, ok = r.Get("k")
	assert.False(t, ok)
}

func TestRedis_MissingKey(t *testing.T) {
	r := newTestRedis(t)

	_, ok := r.Get("absent")
	assert.False(t, ok)
}

func TestRedis_DeletePrefix(t *testing.T) {
	r := newTestRedis(t)

	r.Set(ChatListKey(1, 2), []byte("a"), time.Minute)
	r.Set(ChatHistoryKey(1, 2, "c9"), []byte("b"), time.Minute)
	r.Set(ChatListKey(1, 3), []byte("c"), time.Minute)

	r.DeletePrefix(ChatListPrefix(1, 2))

	_, ok := r.Get(ChatListKey(1, 2))
	assert.False(t, ok)
	_, ok = r.Get(ChatHistoryKey(1, 2, "c9"))
	assert.True(t, ok)
	_, ok = r.Get(ChatListKey(1, 3))
	assert.True(t, ok)
}

func TestMemory_TTLAndPrefix(t *testing.T) {
	m := NewMemory()

	m.Set("a:1", []byte("x"), 10*time.Millisecond)
	m.Set("a:2", []byte("y"), time.Minute)
	m.Set("b:1", []byte("z"), time.Minute)

	time.Sleep(20 * time.Millisecond)
	_, ok := m.Get("a:1")
	assert.False(t, ok, "expired entry must miss")

	m.DeletePrefix("a:")
	_, ok = m.Get("a:2")
	assert.False(t, ok)
	_, ok = m.Get("b:1")
	assert.True(t, ok)
}
