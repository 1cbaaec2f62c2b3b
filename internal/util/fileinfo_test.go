package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"X-loading": 1}`), 0644))

	info, err := GetFileInfo(path)
	require.NoError(t, err)
	assert.Equal(t, int64(16), info.Size)
	assert.NotZero(t, info.ModTime)

	_, err = GetFileInfo(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "logs", "app.log"), ExpandPath("~/logs/app.log"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))

	abs, err := filepath.Abs("relative/path")
	require.NoError(t, err)
	assert.Equal(t, abs, ExpandPath("relative/path"))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureDir(dir))
}

func TestFingerprintBytes(t *testing.T) {
	a := FingerprintBytes([]byte(`{"X-loading": 1}`))
	b := FingerprintBytes([]byte(`{"X-loading": 2}`))

	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, FingerprintBytes([]byte(`{"X-loading": 1}`)))
}
