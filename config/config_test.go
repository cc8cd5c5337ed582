package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "noteboard", "store.json"), cfg.DataPath)
	assert.Equal(t, "studentNotes_v1", cfg.StorageKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Encrypt)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "noteboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_path: ${NB_TEST_DIR:-/tmp}/notes.json
encrypt: true
log:
  level: debug
  file: /tmp/nb.log
`), 0o600))

	t.Setenv("NB_TEST_DIR", "/srv")
	t.Setenv("NOTEBOARD_LOG_LEVEL", "warn")
	t.Setenv("NOTEBOARD_PASSPHRASE", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes.json", cfg.DataPath)
	assert.True(t, cfg.Encrypt)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/nb.log", cfg.Log.File)
	assert.Equal(t, "s3cret", cfg.Passphrase)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("NB_SET", "x")
	assert.Equal(t, "x/y", expandEnv("${NB_SET}/y"))
	assert.Equal(t, "d", expandEnv("${NB_UNSET_VAR:-d}"))
	assert.Equal(t, "", expandEnv("${NB_UNSET_VAR}"))
}
