package state

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
)

// fakeProvider serves listings from memory and records mutations.
type fakeProvider struct {
	dirs      map[string][]FileEntry
	files     map[string][]byte
	listErr   map[string]error
	createErr error
	created   []string
	reads     int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		dirs:    make(map[string][]FileEntry),
		files:   make(map[string][]byte),
		listErr: make(map[string]error),
	}
}

func (p *fakeProvider) addDir(path string, children ...FileEntry) {
	p.dirs[path] = children
}

func (p *fakeProvider) ListDirectory(path string) ([]FileEntry, error) {
	if err, ok := p.listErr[path]; ok {
		return nil, fsutil.ReadError("cannot read directory", path, err)
	}
	entries, ok := p.dirs[path]
	if !ok {
		return nil, fsutil.ReadError("cannot read directory", path, os.ErrNotExist)
	}
	out := make([]FileEntry, len(entries))
	copy(out, entries)
	fsutil.SortEntries(out)
	return out, nil
}

func (p *fakeProvider) ReadFile(path string, limit int64) ([]byte, error) {
	p.reads++
	data, ok := p.files[path]
	if !ok {
		return nil, fsutil.ReadError("cannot open", path, os.ErrNotExist)
	}
	return data, nil
}

func (p *fakeProvider) CreateDirectory(path string) error {
	if p.createErr != nil {
		return fsutil.CreateError(path, p.createErr)
	}
	if _, exists := p.dirs[path]; exists {
		return fsutil.CreateError(path, os.ErrExist)
	}
	p.created = append(p.created, path)
	p.dirs[path] = nil
	parent := filepath.Dir(path)
	p.dirs[parent] = append(p.dirs[parent], dirEntry(parent, filepath.Base(path)))
	return nil
}

func dirEntry(parent, name string) FileEntry {
	return FileEntry{
		Name:     name,
		FullPath: filepath.Join(parent, name),
		IsDir:    true,
		Mode:     os.ModeDir | 0o755,
	}
}

func fileEntry(parent, name string, size int64) FileEntry {
	return FileEntry{
		Name:     name,
		FullPath: filepath.Join(parent, name),
		Size:     size,
		Mode:     0o644,
	}
}

func entryNames(s *DirectorySession) []string {
	items := s.Entries().Items()
	names := make([]string, len(items))
	for i, e := range items {
		names[i] = e.Name
	}
	return names
}

func selectedName(t *testing.T, s *DirectorySession) string {
	t.Helper()
	entry, ok := s.SelectedEntry()
	require.True(t, ok, "expected a selection")
	return entry.Name
}

func mkdirs(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(r)), 0o755))
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// newTestApp builds an AppState plus reducer over the real filesystem at root.
func newTestApp(t *testing.T, root string) (*AppState, *StateReducer) {
	t.Helper()
	provider := fsutil.NewOSProvider()
	session, err := NewDirectorySession(provider, root, SessionOptions{ShowHidden: true})
	require.NoError(t, err)
	return NewAppState(session, 0), NewStateReducer(provider, nil)
}

func reduce(t *testing.T, r *StateReducer, s *AppState, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		_, err := r.Reduce(s, a)
		require.NoError(t, err)
	}
}

// skipOnWindows guards tests that use slash-rooted fake paths.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake provider paths are unix-style")
	}
}
