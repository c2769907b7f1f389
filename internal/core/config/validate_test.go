package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, ":8000", cfg.Serve.Addr)
	assert.Zero(t, cfg.RequestTimeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server_url: https://activities.example.com
request_timeout: 3s
serve:
  data_file: /tmp/activities.json
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://activities.example.com", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ":8000", cfg.Serve.Addr, "unset addr falls back to default")
	assert.Equal(t, "/tmp/activities.json", cfg.Serve.DataFile)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: ftp://nope\nrequest_timeout: -1s\n"), 0o644))

	_, err := Load(path)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "server_url", fieldErrs[0].Field)
	assert.Equal(t, "request_timeout", fieldErrs[1].Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty url", func(c *Config) { c.ServerURL = "" }, "server_url"},
		{"relative url", func(c *Config) { c.ServerURL = "/activities" }, "server_url"},
		{"missing host", func(c *Config) { c.ServerURL = "http://" }, "server_url"},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, "request_timeout"},
		{"empty addr", func(c *Config) { c.Serve.Addr = "" }, "serve.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestValidateDeep(t *testing.T) {
	t.Run("missing config file warns", func(t *testing.T) {
		cfg := DefaultConfig()

		warnings, err := cfg.ValidateDeep(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "config file", warnings[0].Item)
	})

	t.Run("config path is a directory", func(t *testing.T) {
		cfg := DefaultConfig()

		_, err := cfg.ValidateDeep(t.TempDir())

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "config", fieldErrs[0].Field)
	})

	t.Run("data file directory missing warns", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Serve.DataFile = filepath.Join(t.TempDir(), "missing", "activities.json")

		warnings, err := cfg.ValidateDeep("")
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "serve.data_file", warnings[0].Item)
	})

	t.Run("includes field errors", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ServerURL = "nope"

		_, err := cfg.ValidateDeep("")

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "server_url", fieldErrs[0].Field)
	})
}
