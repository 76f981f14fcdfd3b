package navermap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leeeeeeeed/real-estate-list-app/internal/config"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
)

func TestLoader_ScriptURL(t *testing.T) {
	loader := NewLoader(&config.NaverMapConfig{
		ClientID:       "abc123",
		BaseURL:        "https://openapi.map.naver.com",
		RequestTimeout: 10,
	}, zap.NewNop())

	assert.Equal(t, "https://openapi.map.naver.com/openapi/v3/maps.js?ncpClientId=abc123", loader.ScriptURL())
}

func TestLoader_Load(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful load", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			assert.Equal(t, "/openapi/v3/maps.js", r.URL.Path)
			assert.Equal(t, "test-client", r.URL.Query().Get("ncpClientId"))
			w.Header().Set("Content-Type", "application/javascript")
			_, _ = w.Write([]byte("window.naver = {maps: {}};"))
		}))
		defer server.Close()

		loader := NewLoader(&config.NaverMapConfig{
			ClientID:       "test-client",
			BaseURL:        server.URL,
			RequestTimeout: 5,
		}, logger)
		assert.Equal(t, domain.MapStatusLoading, loader.Status().State)

		require.NoError(t, loader.Load(context.Background()))
		// повторный вызов не ходит в сеть
		require.NoError(t, loader.Load(context.Background()))

		status := loader.Status()
		assert.Equal(t, domain.MapStatusReady, status.State)
		assert.NotNil(t, status.LoadedAt)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	})

	t.Run("missing client id stays loading", func(t *testing.T) {
		loader := NewLoader(&config.NaverMapConfig{
			BaseURL:        "http://127.0.0.1:1",
			RequestTimeout: 1,
		}, logger)

		err := loader.Load(context.Background())
		assert.ErrorIs(t, err, ErrClientIDMissing)

		status := loader.Status()
		assert.Equal(t, domain.MapStatusLoading, status.State)
		assert.Equal(t, "NAVER_MAP_CLIENT_ID is not set", status.Reason)
	})

	t.Run("server error fails once", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		loader := NewLoader(&config.NaverMapConfig{
			ClientID:       "bad-client",
			BaseURL:        server.URL,
			RequestTimeout: 5,
		}, logger)

		err := loader.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")

		// без повторных попыток
		assert.Error(t, loader.Load(context.Background()))
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

		status := loader.Status()
		assert.Equal(t, domain.MapStatusFailed, status.State)
		assert.NotEmpty(t, status.Reason)
	})

	t.Run("empty script", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		loader := NewLoader(&config.NaverMapConfig{
			ClientID:       "client",
			BaseURL:        server.URL,
			RequestTimeout: 5,
		}, logger)

		assert.Error(t, loader.Load(context.Background()))
		assert.Equal(t, domain.MapStatusFailed, loader.Status().State)
	})
}
