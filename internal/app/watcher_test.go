package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) *dirWatcher {
	t.Helper()
	log, _ := test.NewNullLogger()
	w, err := newDirWatcher(log)
	if err != nil {
		t.Skipf("filesystem notifications unavailable: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func waitForChange(t *testing.T, w *dirWatcher) string {
	t.Helper()
	select {
	case dir := <-w.Changes():
		return dir
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
		return ""
	}
}

func TestDirWatcherReportsCreatedFile(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)
	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), nil, 0o644))
	assert.Equal(t, dir, waitForChange(t, w))
}

func TestDirWatcherSwitchesDirectory(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w := newTestWatcher(t)
	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))

	require.NoError(t, os.Mkdir(filepath.Join(second, "sub"), 0o755))
	assert.Equal(t, second, waitForChange(t, w))
}

func TestDirWatcherRejectsMissingDirectory(t *testing.T) {
	w := newTestWatcher(t)
	err := w.Watch(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestNilWatcherHasNoChanges(t *testing.T) {
	var w *dirWatcher
	assert.Nil(t, w.Changes())
}

func TestDirWatcherCloseIsIdempotent(t *testing.T) {
	w := newTestWatcher(t)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestDirWatcherReportsRemovalOfWatchedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	require.NoError(t, os.Mkdir(dir, 0o755))
	w := newTestWatcher(t)
	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.Remove(dir))
	assert.Equal(t, dir, waitForChange(t, w))
}
