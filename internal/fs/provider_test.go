package fs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirectorySortsDirectoriesFirst(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zdir"), 0o755))

	entries, err := NewOSProvider().ListDirectory(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "zdir", entries[0].Name)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "a.txt", entries[1].Name)
	assert.Equal(t, filepath.Join(dir, "a.txt"), entries[1].FullPath)
	assert.True(t, entries[1].IsRegular())
	assert.Equal(t, "b.txt", entries[2].Name)
}

func TestListDirectoryResolvesSymlinkTargets(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	entries, err := NewOSProvider().ListDirectory(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	link := entries[0]
	if link.Name != "link" {
		link = entries[1]
	}
	assert.True(t, link.IsSymlink)
	assert.True(t, link.IsDir)
}

func TestListDirectoryMissingPathIsReadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	_, err := NewOSProvider().ListDirectory(missing)
	require.Error(t, err)
	assert.True(t, IsRead(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), missing)
}

func TestListDirectoryUsesReadDirSeam(t *testing.T) {
	orig := osReadDir
	defer func() { osReadDir = orig }()
	osReadDir = func(string) ([]os.DirEntry, error) {
		return nil, os.ErrPermission
	}

	_, err := NewOSProvider().ListDirectory("/restricted")
	require.Error(t, err)
	assert.True(t, IsRead(err))
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))
	p := NewOSProvider()

	t.Run("within_limit", func(t *testing.T) {
		data, err := p.ReadFile(path, 10)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", string(data))
	})

	t.Run("no_limit", func(t *testing.T) {
		data, err := p.ReadFile(path, 0)
		require.NoError(t, err)
		assert.Len(t, data, 10)
	})

	t.Run("too_large", func(t *testing.T) {
		_, err := p.ReadFile(path, 4)
		require.Error(t, err)
		assert.True(t, IsTooLarge(err))
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := p.ReadFile(dir, 0)
		require.Error(t, err)
		assert.True(t, IsRead(err))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := p.ReadFile(filepath.Join(dir, "nope"), 0)
		require.Error(t, err)
		assert.True(t, IsRead(err))
	})
}

func TestCreateDirectory(t *testing.T) {
	dir := t.TempDir()
	p := NewOSProvider()
	path := filepath.Join(dir, "new")

	require.NoError(t, p.CreateDirectory(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	err = p.CreateDirectory(path)
	require.Error(t, err)
	assert.True(t, IsCreate(err))
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestErrorFormatting(t *testing.T) {
	err := ReadError("cannot open", "/x/y", os.ErrPermission)
	assert.Equal(t, "cannot open /x/y: permission denied", err.Error())
	assert.Equal(t, KindRead, KindOf(err))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "create", KindCreate.String())
}
