package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	for _, key := range []string{"API_URL", "APP_ENV", "TIMEZONE", "HTTP_TIMEOUT_SECONDS", "WATCH_INTERVAL_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 30*time.Second, cfg.Interval())
	assert.Equal(t, time.Local, cfg.Location())
	assert.False(t, cfg.IsProd())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("API_URL", "http://127.0.0.1:8080")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, time.UTC, cfg.Location())
	assert.True(t, cfg.IsProd())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{APIURL: "http://localhost:8080", HTTPTimeout: 1, WatchInterval: 1}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty url", mutate: func(c *Config) { c.APIURL = "" }, wantErr: true},
		{name: "relative url", mutate: func(c *Config) { c.APIURL = "localhost" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }, wantErr: true},
		{name: "negative interval", mutate: func(c *Config) { c.WatchInterval = -1 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "named timezone", mutate: func(c *Config) { c.Timezone = "UTC" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDir(t *testing.T) {
	home := t.TempDir()

	t.Run("default", func(t *testing.T) {
		t.Setenv("CONFIG_DIR", "")
		assert.Equal(t, filepath.Join(home, ".oficina"), Dir(home))
	})

	t.Run("relative to home", func(t *testing.T) {
		t.Setenv("CONFIG_DIR", "oficina-dev")
		assert.Equal(t, filepath.Join(home, "oficina-dev"), Dir(home))
	})

	t.Run("absolute", func(t *testing.T) {
		abs := t.TempDir()
		t.Setenv("CONFIG_DIR", abs)
		assert.Equal(t, abs, Dir(home))
	})
}
