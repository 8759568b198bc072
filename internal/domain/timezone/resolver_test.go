package timezone

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, endpoint string) *HTTPResolver {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHTTPResolver(endpoint, 2*time.Second, logger)
}

func TestHTTPResolver_ResolveTimezone(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a zone and caches it", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, "31.23", r.URL.Query().Get("lat"))
			assert.Equal(t, "121.47", r.URL.Query().Get("lon"))
			w.Write([]byte(`{"timezone": "Asia/Shanghai"}`))
		}))
		defer server.Close()

		resolver := newTestResolver(t, server.URL)

		zone, err := resolver.ResolveTimezone(ctx, "31.23", "121.47")
		require.NoError(t, err)
		assert.Equal(t, "Asia/Shanghai", zone)

		zone, err = resolver.ResolveTimezone(ctx, "31.23", "121.47")
		require.NoError(t, err)
		assert.Equal(t, "Asia/Shanghai", zone)
		assert.Equal(t, int32(1), calls.Load(), "second lookup should come from cache")
	})

	t.Run("non-200 responses fail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestResolver(t, server.URL).ResolveTimezone(ctx, "0", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("empty zone in the payload fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := newTestResolver(t, server.URL).ResolveTimezone(ctx, "0", "0")
		require.Error(t, err)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"timezone": "Europe/Lisbon"}`))
		}))
		defer server.Close()

		resolver := newTestResolver(t, server.URL)

		_, err := resolver.ResolveTimezone(ctx, "38.72", "-9.14")
		require.Error(t, err)

		zone, err := resolver.ResolveTimezone(ctx, "38.72", "-9.14")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Lisbon", zone)
	})
}
