package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("test", nil, envOf(map[string]string{"JWT_SECRET": "s"}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "3001", cfg.BackendPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.SaveDebounce)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
	assert.Equal(t, "data/orders.json", cfg.OrdersDBPath)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.AdminAPIKey)
}

func TestParseEnvThenFlags(t *testing.T) {
	env := envOf(map[string]string{
		"JWT_SECRET":    "s",
		"PORT":          "9000",
		"DATABASE_URL":  "postgres://localhost/paint",
		"SAVE_DEBOUNCE": "1s",
	})

	cfg, err := Parse("test", []string{"--port", "9100"}, env)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, time.Second, cfg.SaveDebounce)
}

func TestParseRejects(t *testing.T) {
	_, err := Parse("test", nil, envOf(nil))
	assert.Error(t, err, "missing secret")

	_, err = Parse("test", []string{"--db-driver", "mysql"}, envOf(map[string]string{"JWT_SECRET": "s"}))
	assert.Error(t, err)

	_, err = Parse("test", []string{"--db-driver", "postgres"}, envOf(map[string]string{"JWT_SECRET": "s"}))
	assert.Error(t, err)

	_, err = Parse("test", nil, envOf(map[string]string{"JWT_SECRET": "s", "SAVE_DEBOUNCE": "soon"}))
	assert.Error(t, err)

	_, err = Parse("test", []string{"--session-idle", "0s"}, envOf(map[string]string{"JWT_SECRET": "s"}))
	assert.Error(t, err)
}
