package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Provider is the filesystem surface the browser needs.
type Provider interface {
	ListDirectory(path string) ([]Entry, error)
	ReadFile(path string, limit int64) ([]byte, error)
	CreateDirectory(path string) error
}

var (
	osReadDir = os.ReadDir
	osStat    = os.Stat
	osOpen    = os.Open
	osMkdir   = os.Mkdir
)

var _ Provider = (*OSProvider)(nil)

// OSProvider implements Provider on top of the host filesystem.
type OSProvider struct{}

func NewOSProvider() *OSProvider {
	return &OSProvider{}
}

// ListDirectory reads path and returns its entries sorted directories first,
// then by name. Entries that vanish while being listed are skipped.
func (p *OSProvider) ListDirectory(path string) ([]Entry, error) {
	dirEntries, err := osReadDir(path)
	if err != nil {
		return nil, ReadError("cannot read directory", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}

		rawName := de.Name()
		fullPath := filepath.Join(path, rawName)
		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		entry := Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
			IsDir:    de.IsDir(),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Mode:     info.Mode(),
		}

		if info.Mode()&os.ModeSymlink != 0 {
			entry.IsSymlink = true
			if target, err := osStat(fullPath); err == nil {
				entry.IsDir = target.IsDir()
				entry.Mode = target.Mode()
				entry.Size = target.Size()
			}
		}

		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

// ReadFile reads a regular file in full. A positive limit caps the size;
// larger files fail with KindTooLarge instead of being truncated.
// Non-regular files are rejected before opening, since opening a FIFO
// blocks until a writer appears.
func (p *OSProvider) ReadFile(path string, limit int64) ([]byte, error) {
	info, err := osStat(path)
	if err != nil {
		return nil, ReadError("cannot open", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ReadError("cannot open", path, ErrNotRegular)
	}

	f, err := osOpen(path)
	if err != nil {
		return nil, ReadError("cannot open", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err = f.Stat()
	if err != nil {
		return nil, ReadError("cannot open", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ReadError("cannot open", path, ErrNotRegular)
	}
	if limit > 0 && info.Size() > limit {
		return nil, tooLarge(path, info.Size(), limit)
	}

	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ReadError("cannot read", path, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, tooLarge(path, int64(len(data)), limit)
	}
	return data, nil
}

func tooLarge(path string, size, limit int64) error {
	return newError(KindTooLarge, "cannot open", path,
		fmt.Errorf("%w (%d bytes, limit %d)", ErrTooLarge, size, limit))
}

// CreateDirectory creates a single directory; parents must exist.
func (p *OSProvider) CreateDirectory(path string) error {
	if err := osMkdir(path, 0o755); err != nil {
		return CreateError(path, err)
	}
	return nil
}

// SortEntries orders directories before files, each group by name.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
}
