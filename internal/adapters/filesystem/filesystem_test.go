package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_WriteReadStat(t *testing.T) {
	fs := New()
	dir := filepath.Join(t.TempDir(), "cpgate")

	require.NoError(t, fs.MkdirAll(dir, 0o700))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, fs.WriteFile(path, []byte("gateway:\n  port: 5000\n"), 0o600))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gateway:\n  port: 5000\n", string(data))

	info, err := fs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = fs.Stat(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAdapter_LookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not used on windows")
	}

	fs := New()
	dir := t.TempDir()
	exe := filepath.Join(dir, "gateway.sh")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	resolved, err := fs.LookPath(exe)
	require.NoError(t, err)
	assert.Equal(t, exe, resolved)

	_, err = fs.LookPath(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
