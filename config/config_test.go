package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{raw: "15m", want: 15 * time.Minute},
		{raw: "7d", want: 7 * 24 * time.Hour},
		{raw: "1.5d", want: 36 * time.Hour},
		{raw: "2h30m", want: 150 * time.Minute},
		{raw: "900", want: 900 * time.Second},
		{raw: " 1h ", want: time.Hour},
		{raw: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDuration(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, raw := range []string{"soon", "xd", "10y"} {
		_, err := ParseDuration(raw)
		assert.Error(t, err, raw)
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
jwt:
  access:
    secret: from-file
    expiration: 15m
  refresh:
    secret: refresh-file
    expiration: 7d
auth:
  bcryptCost: 12
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	t.Chdir(dir)
	t.Setenv("JWT_ACCESS_SECRET", "from-env")
	t.Setenv("JWT_REFRESH_EXPIRATION", "30d")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Access.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Access.Expiration)
	assert.Equal(t, "refresh-file", cfg.JWT.Refresh.Secret)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.Refresh.Expiration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_NumericDurationsAreSeconds(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
jwt:
  access:
    secret: access-file
    expiration: 900
  refresh:
    secret: refresh-file
    expiration: "900"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.Access.Expiration)
	assert.Equal(t, cfg.JWT.Access.Expiration, cfg.JWT.Refresh.Expiration)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultAccessExpiration, cfg.JWT.Access.Expiration)
	assert.Equal(t, defaultRefreshExpiration, cfg.JWT.Refresh.Expiration)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Migration.Enabled)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	assert.Error(t, cfg.validate())

	cfg.JWT.Access.Secret = "same"
	cfg.JWT.Refresh.Secret = "same"
	assert.Error(t, cfg.validate())

	cfg.JWT.Refresh.Secret = "different"
	assert.NoError(t, cfg.validate())
}
