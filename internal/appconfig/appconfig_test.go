package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 51.8363, cfg.Latitude, 0.001)
	assert.InDelta(t, 5.7930, cfg.Longitude, 0.001)
	assert.Equal(t, "Europe/Amsterdam", cfg.Timezone)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "https://api.open-meteo.com", cfg.ProviderURL)
	assert.Equal(t, 8*time.Second, cfg.RequestTimeout())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WEATHER_LISTEN", ":9100")
	t.Setenv("WEATHER_TIMEOUT", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.ListenAddr)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "latitude: 52.37\nlongitude: 4.89\ntimezone: Europe/Amsterdam\nlisten: \":9000\"\ntimeout: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 52.37, cfg.Latitude, 0.0001)
	assert.InDelta(t, 4.89, cfg.Longitude, 0.0001)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRequestTimeoutFallback(t *testing.T) {
	cfg := Config{TimeoutSeconds: 0}
	assert.Equal(t, 8*time.Second, cfg.RequestTimeout())

	cfg = Config{TimeoutSeconds: -2}
	assert.Equal(t, 8*time.Second, cfg.RequestTimeout())
}
