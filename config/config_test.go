package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: production
http:
  port: 8080
storage:
  driver: memory
secretKey:
  access: from-file
auth:
  tokenTTL: 24h
janitor:
  enabled: true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, sampleYAML)
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")

	assert.ErrorContains(t, err, "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Janitor: &JanitorConfig{Enabled: true}, Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultBasePath, cfg.HTTP.BasePath)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverFirestore, cfg.Storage.Driver)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultJanitorInterval, cfg.Janitor.Interval)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.NotNil(t, cfg.GoogleOAuth)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Storage.Driver = DriverMemory
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "memory", mutate: func(*Config) {}},
		{
			name:    "firestore without firebase section",
			mutate:  func(c *Config) { c.Storage.Driver = DriverFirestore },
			wantErr: "firebase config is required",
		},
		{
			name:    "postgres without postgres section",
			mutate:  func(c *Config) { c.Storage.Driver = DriverPostgres },
			wantErr: "postgres config is required",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "sqlite" },
			wantErr: "unknown storage driver",
		},
		{
			name:    "mismatched blacklist driver",
			mutate:  func(c *Config) { c.Storage.BlacklistDriver = DriverPostgres },
			wantErr: "must match storage driver",
		},
		{
			name:    "redis blacklist without redis section",
			mutate:  func(c *Config) { c.Storage.BlacklistDriver = DriverRedis },
			wantErr: "redis config is required",
		},
		{
			name: "redis blacklist",
			mutate: func(c *Config) {
				c.Storage.BlacklistDriver = DriverRedis
				c.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
		{
			name:    "missing secret",
			mutate:  func(c *Config) { c.SecretKey.Access = "" },
			wantErr: "secretKey.access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBlacklistDriverFallsBackToStorageDriver(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = DriverPostgres

	assert.Equal(t, DriverPostgres, cfg.BlacklistDriver())

	cfg.Storage.BlacklistDriver = DriverRedis
	assert.Equal(t, DriverRedis, cfg.BlacklistDriver())
}
