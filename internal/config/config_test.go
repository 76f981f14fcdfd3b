package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("NAVER_MAP_CLIENT_ID", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "", cfg.NaverMap.ClientID)
	assert.Equal(t, "https://openapi.map.naver.com", cfg.NaverMap.BaseURL)
	assert.Equal(t, 37.5665, cfg.Map.CenterLat)
	assert.Equal(t, 126.978, cfg.Map.CenterLng)
	assert.Equal(t, 12, cfg.Map.Zoom)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "stream:property:changes", cfg.Redis.ChangeStream)
	assert.Equal(t, 2*time.Second, cfg.Redis.PublishTimeout)
	assert.Equal(t, "property-change-audit", cfg.Worker.ConsumerGroup)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nNAVER_MAP_CLIENT_ID= abc123 \nREDIS_ENABLED=true\nNAVER_MAP_BASE_URL=http://maps.local/\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv не перезаписывает уже заданные переменные
	for _, key := range []string{"API_PORT", "NAVER_MAP_CLIENT_ID", "REDIS_ENABLED", "NAVER_MAP_BASE_URL"} {
		key := key
		prev, had := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "abc123", cfg.NaverMap.ClientID)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "http://maps.local", cfg.NaverMap.BaseURL)
}
