package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherReportsTargetOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "perf.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0644))

	fw, err := NewFileWatcher(target)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	select {
	case event := <-fw.Events():
		t.Fatalf("unexpected event for %s", event.Path)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(target, []byte(`{"X-loading": 1}`), 0644))
	select {
	case event := <-fw.Events():
		assert.Equal(t, target, filepath.Clean(event.Path))
		assert.NotEmpty(t, event.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}
}

func TestFileWatcherCloseEndsEvents(t *testing.T) {
	target := filepath.Join(t.TempDir(), "perf.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0644))

	fw, err := NewFileWatcher(target)
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	_, ok := <-fw.Events()
	assert.False(t, ok)
}

func TestFileWatcherMissingDirectory(t *testing.T) {
	_, err := NewFileWatcher(filepath.Join(t.TempDir(), "missing", "perf.json"))
	assert.Error(t, err)
}
