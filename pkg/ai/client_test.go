package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New("test-key", "test-model")
	c.url = srv.URL
	return c
}

func TestGenerate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" Привет! "}}]}`))
	})

	out, err := c.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "Привет!", out)
}

func TestGenerateUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.Generate(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"guard_code"}}]}`))
	})
	assert.Equal(t, IntentGuardCode, c.Classify(context.Background(), "скинь код плز"))
}

func TestClassifyDegrades(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		var c *Client
		assert.Equal(t, IntentUnknown, c.Classify(context.Background(), "anything"))
	})

	t.Run("unexpected label", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"I think the buyer wants a code"}}]}`))
		})
		assert.Equal(t, IntentUnknown, c.Classify(context.Background(), "..."))
	})
}
