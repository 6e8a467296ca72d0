package daemonconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kdbd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listenSocket: /tmp/custom.sock\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.sock", cfg.ListenSocket)
	assert.Equal(t, Defaults().LogLevel, cfg.LogLevel)
	assert.Equal(t, Defaults().MaxSessions, cfg.MaxSessions)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
