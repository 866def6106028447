package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easilogin/easidesk/internal/config"
	"github.com/easilogin/easidesk/internal/errors"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expect, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	defer func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2025-01-08")
	assert.Equal(t, "1.2.3", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2025-01-08", date)
}

func TestRootCommand_Registered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["init"])
	assert.True(t, names["serve"])
	assert.True(t, names["version"])
	assert.True(t, names["completion"])
}

func TestInit_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(original) }()

	err = Init(InitOptions{NonInteractive: true})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPIBase, cfg.APIBase)

	// A second run without --force refuses to overwrite.
	err = Init(InitOptions{NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	// With Overwrite it succeeds.
	err = Init(InitOptions{NonInteractive: true, Overwrite: true, APIBase: "http://localhost:9999"})
	require.NoError(t, err)

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.APIBase)
}

func TestInit_NonInteractiveValidatesAddress(t *testing.T) {
	dir := t.TempDir()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(original) }()

	err = Init(InitOptions{NonInteractive: true, APIBase: "not a url"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestServeCommand_RejectsBadPort(t *testing.T) {
	dir := t.TempDir()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(original) }()
	t.Setenv("HOME", dir)

	err = serveCommand("", "", 70000)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
