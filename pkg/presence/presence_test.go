package presence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/presence/76561198000000000", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"in_game":true,"in_match":true,"match_seconds":420}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	snap := c.Lookup(context.Background(), 76561198000000000)
	assert.True(t, snap.InGame)
	assert.True(t, snap.InMatch)
	assert.Equal(t, 420, snap.MatchSeconds)
	assert.False(t, snap.Idle())

	// Second lookup inside the TTL is served from cache.
	c.Lookup(context.Background(), 76561198000000000)
	assert.Equal(t, int64(1), calls.Load())
}

func TestLookupDegradesToOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	snap := New(srv.URL).Lookup(context.Background(), 76561198000000000)
	assert.True(t, snap.Idle())
}

func TestNilClient(t *testing.T) {
	var c *Client
	snap := c.Lookup(context.Background(), 42)
	assert.True(t, snap.Idle())
}
