package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easilogin/easidesk/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "http://127.0.0.1:24300", cfg.APIBase)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.Equal(t, "127.0.0.1", cfg.Serve.Addr)
	assert.Equal(t, 24300, cfg.Serve.Port)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
api_base: http://localhost:9000
interval: 2s
timeout: 1s
serve:
  port: 9000
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.APIBase)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, 9000, cfg.Serve.Port)
	// Unset fields keep defaults
	assert.Equal(t, "127.0.0.1", cfg.Serve.Addr)
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	require.NoError(t, os.WriteFile(configPath, []byte("api_base: http://10.0.0.5:24300\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:24300", cfg.APIBase)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("api_base: [unclosed\n"), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestFind_Explicit(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0644))

	found, err := Find(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestFind_ExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadOrDefault_NoConfig(t *testing.T) {
	// Run from an empty temp dir so no config is found
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(orig)

	// Stop the parent-dir walk from finding a real config
	t.Setenv("HOME", dir)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "future version",
			mutate:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: true,
		},
		{
			name:    "empty api base",
			mutate:  func(c *Config) { c.APIBase = "" },
			wantErr: true,
		},
		{
			name:    "api base without host",
			mutate:  func(c *Config) { c.APIBase = "http://" },
			wantErr: true,
		},
		{
			name:    "api base with bad scheme",
			mutate:  func(c *Config) { c.APIBase = "ftp://127.0.0.1:24300" },
			wantErr: true,
		},
		{
			name:    "https api base",
			mutate:  func(c *Config) { c.APIBase = "https://login.example.com" },
			wantErr: false,
		},
		{
			name:    "interval too short",
			mutate:  func(c *Config) { c.Interval = 100 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Serve.Port = 70000 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := DefaultConfig()
	cfg.APIBase = "http://localhost:9999"
	cfg.Interval = 2 * time.Second
	cfg.Serve.Port = 9999

	require.NoError(t, Save(cfg, path))

	// The file carries the header comment and string durations.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# easidesk configuration")
	assert.Contains(t, string(data), "interval: 2s")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
