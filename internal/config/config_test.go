package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.ErrorIs(t, err, ErrConfigNotFound)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Destination)
}

func TestLoad_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	data := "destination: ./out\nmanifest: trees/main.yaml\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0644))

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "./out", cfg.Destination)
	assert.Equal(t, "trees/main.yaml", cfg.Manifest)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	data := "destination: ./out\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0644))

	t.Setenv("FSCREATOR_DESTINATION", "/elsewhere")
	t.Setenv("FSCREATOR_LOG_LEVEL", "error")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.Destination)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_EnvAppliesWithoutConfigFile(t *testing.T) {
	t.Setenv("FSCREATOR_MANIFEST", "custom.yaml")

	cfg, err := Load(t.TempDir())

	require.ErrorIs(t, err, ErrConfigNotFound)
	assert.Equal(t, "custom.yaml", cfg.Manifest)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{{"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
