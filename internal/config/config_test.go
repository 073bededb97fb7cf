package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirTemp moves into an empty temp dir so DefaultPath does not exist.
func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

provider:
  base_url: "http://localhost:9999/jsonapi_s"
  timeout: "3s"
  keyfrom: "webdict"
  accept_language: "en-US"

lookup:
  default_lang: "ja"
  max_word_length: 64

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://example.com"
  allow_credentials: true
`

// validConfig returns a Config populated with defaults that passes Validate.
func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ShutdownTimeout: 10 * time.Second,
		},
		Provider: ProviderConfig{
			BaseURL: "https://dict.youdao.com/jsonapi_s",
			Timeout: 15 * time.Second,
			KeyFrom: "webdict",
		},
		Lookup: LookupConfig{DefaultLang: "en", MaxWordLength: 128},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://localhost:9999/jsonapi_s", cfg.Provider.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "en-US", cfg.Provider.AcceptLanguage)
	// Fields absent from YAML keep their env-default values.
	assert.Equal(t, "https://youdao.com", cfg.Provider.Origin)

	assert.Equal(t, "ja", cfg.Lookup.DefaultLang)
	assert.Equal(t, 64, cfg.Lookup.MaxWordLength)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	assert.Equal(t, "https://example.com", cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PROVIDER_TIMEOUT", "7s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port, "ENV override")
	assert.Equal(t, "warn", cfg.Log.Level, "ENV override")
	assert.Equal(t, 7*time.Second, cfg.Provider.Timeout, "ENV override")
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "https://dict.youdao.com/jsonapi_s", cfg.Provider.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "webdict", cfg.Provider.KeyFrom)
	assert.Equal(t, "application/json, text/plain, */*", cfg.Provider.Accept)
	assert.Equal(t, "en", cfg.Lookup.DefaultLang)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.CORS.AllowCredentials)
}

func TestLoadFrom_ExplicitPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidValueFailsValidation(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PROVIDER_BASE_URL", "ftp://dict.example.com")
	chdirTemp(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "shutdown timeout zero", mutate: func(c *Config) { c.Server.ShutdownTimeout = 0 }, wantErr: true},
		{name: "base url without host", mutate: func(c *Config) { c.Provider.BaseURL = "https:///jsonapi_s" }, wantErr: true},
		{name: "base url bad scheme", mutate: func(c *Config) { c.Provider.BaseURL = "dict.youdao.com" }, wantErr: true},
		{name: "provider timeout zero", mutate: func(c *Config) { c.Provider.Timeout = 0 }, wantErr: true},
		{name: "empty keyfrom", mutate: func(c *Config) { c.Provider.KeyFrom = "" }, wantErr: true},
		{name: "empty default lang", mutate: func(c *Config) { c.Lookup.DefaultLang = " " }, wantErr: true},
		{name: "negative max word length", mutate: func(c *Config) { c.Lookup.MaxWordLength = -1 }, wantErr: true},
		{name: "max word length disabled", mutate: func(c *Config) { c.Lookup.MaxWordLength = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
