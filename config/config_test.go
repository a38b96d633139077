package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "bakery", cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "Canada/Eastern", cfg.App.TimeZone)
	assert.Equal(t, "memory", cfg.Database.Type)
	assert.Equal(t, "log", cfg.Notification.Type)
	assert.Equal(t, "ADMIN", cfg.Auth.AdminUsername)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 86400, cfg.CORS.MaxAge)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("BAKERY_DATABASE_TYPE", "sqlite")
	t.Setenv("BAKERY_DATABASE_DATABASE", "bakery.db")
	t.Setenv("BAKERY_SERVER_PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "bakery.db", cfg.Database.Database)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  env: production
auth:
  jwt_secret: secret
notification:
  type: email
  from: boulangerie@example.com
  to:
    - admin@example.com
  subject_prefix: Boulangerie
  smtp:
    host: smtp.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"admin@example.com"}, cfg.Notification.To)
	assert.Equal(t, "smtp.example.com", cfg.Notification.SMTP.Host)
	assert.Equal(t, 587, cfg.Notification.SMTP.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown database type", func(c *Config) { c.Database.Type = "oracle" }},
		{"jwt secret outside development", func(c *Config) { c.App.Env = "production" }},
		{"email without recipients", func(c *Config) {
			c.Notification.Type = "email"
			c.Notification.From = "boulangerie@example.com"
			c.Notification.SMTP.Host = "smtp.example.com"
		}},
		{"email without smtp host", func(c *Config) {
			c.Notification.Type = "email"
			c.Notification.From = "boulangerie@example.com"
			c.Notification.To = []string{"admin@example.com"}
		}},
		{"invalid recipient", func(c *Config) { c.Notification.To = []string{"not-an-email"} }},
		{"kafka without brokers", func(c *Config) { c.Notification.Type = "kafka" }},
		{"file log without path", func(c *Config) {
			c.Log.Output = "file"
			c.Log.FilePath = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, valid(t).Validate())
}
