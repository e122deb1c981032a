package config

import (
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

var keys = []string{
    "BACKEND_PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
    "INSTANCE_NAME", "LOG_LEVEL", "METRICS_ENABLED", "CONFIG_FILE",
}

// clearEnv unsets every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
    t.Helper()
    for _, key := range keys {
        t.Setenv(key, "")
        os.Unsetenv(key)
    }
}

func TestLoadDefaults(t *testing.T) {
    clearEnv(t)

    cfg := Load()
    assert.Equal(t, Default(), cfg)
    assert.Equal(t, "8080", cfg.Port)
    assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
    assert.True(t, cfg.MetricsEnabled)
}

func TestLoadFromEnv(t *testing.T) {
    clearEnv(t)
    t.Setenv("BACKEND_PORT", "9090")
    t.Setenv("READ_TIMEOUT", "3s")
    t.Setenv("WRITE_TIMEOUT", "not-a-duration")
    t.Setenv("INSTANCE_NAME", "pricing-7")
    t.Setenv("METRICS_ENABLED", "false")

    cfg := Load()
    assert.Equal(t, "9090", cfg.Port)
    assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
    assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
    assert.Equal(t, "pricing-7", cfg.InstanceName)
    assert.False(t, cfg.MetricsEnabled)
}

func TestLoadWithFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.yaml")
    require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\ninstance_name: from-file\nlog_level: debug\nidle_timeout: 2m\n"), 0o644))

    clearEnv(t)
    t.Setenv("CONFIG_FILE", path)
    t.Setenv("INSTANCE_NAME", "from-env")

    cfg, err := LoadWithFile()
    require.NoError(t, err)
    assert.Equal(t, "7070", cfg.Port)
    assert.Equal(t, "from-env", cfg.InstanceName)
    assert.Equal(t, "debug", cfg.LogLevel)
    assert.Equal(t, 2*time.Minute, cfg.IdleTimeout)
    assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
}

func TestLoadFileErrors(t *testing.T) {
    _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
    require.Error(t, err)

    path := filepath.Join(t.TempDir(), "bad.yaml")
    require.NoError(t, os.WriteFile(path, []byte("port: [1, 2"), 0o644))
    _, err = LoadFile(path, Default())
    require.Error(t, err)
}
