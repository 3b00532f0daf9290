package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "0123456789abcdef-test")
	t.Setenv("STORAGE", "memory")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, OwnershipRedirect, cfg.OwnershipPolicy)
	assert.Equal(t, 30, cfg.LoginRPM)
	assert.False(t, cfg.UseRedis())
	assert.False(t, cfg.SeedDemo)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("OWNERSHIP_POLICY", "forbid")
	t.Setenv("SEED_DEMO", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, OwnershipForbid, cfg.OwnershipPolicy)
	assert.True(t, cfg.SeedDemo)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"short secret", map[string]string{"JWT_SECRET": "short"}},
		{"mysql without dsn", map[string]string{"STORAGE": "mysql"}},
		{"unknown storage", map[string]string{"STORAGE": "postgres"}},
		{"unknown ownership policy", map[string]string{"OWNERSHIP_POLICY": "ignore"}},
		{"non-positive login rpm", map[string]string{"LOGIN_RPM": "0"}},
		{"bad port", map[string]string{"APP_PORT": "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		logger, err := NewLogger(env)
		require.NoError(t, err, env)
		assert.NotNil(t, logger)
	}
}
