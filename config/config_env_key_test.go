package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"enableGlobalErrorLogging": false,
			"log": map[string]any{
				"level": "info",
			},
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
		"database": map[string]any{
			"autoMigrate": true,
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ENV_ENABLEGLOBALERRORLOGGING", want: "env.enableGlobalErrorLogging"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLiteDSN, cfg.Database.DSN)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{BcryptCost: 12}}
	cfg.HTTP.Port = 8080
	cfg.Database.Driver = DriverPostgres

	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Database.DSN, "postgres connection details live in the postgres section")
}

func TestApplyLegacyEnv(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantPort    int
		wantLogging bool
	}{
		{name: "unset", env: map[string]string{}, wantPort: 5000, wantLogging: false},
		{name: "port override", env: map[string]string{"PORT": "3000"}, wantPort: 3000},
		{name: "invalid port ignored", env: map[string]string{"PORT": "abc"}, wantPort: 5000},
		{name: "logging enabled", env: map[string]string{"ENABLE_GLOBAL_ERROR_LOGGING": "true"}, wantPort: 5000, wantLogging: true},
		{name: "logging requires literal true", env: map[string]string{"ENABLE_GLOBAL_ERROR_LOGGING": "1"}, wantPort: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.HTTP.Port = 5000

			applyLegacyEnv(cfg, func(key string) (string, bool) {
				v, ok := tt.env[key]

				return v, ok
			})

			assert.Equal(t, tt.wantPort, cfg.HTTP.Port)
			assert.Equal(t, tt.wantLogging, cfg.Env.EnableGlobalErrorLogging)
		})
	}
}
