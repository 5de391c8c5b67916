package fs

import (
	"os"
	"path/filepath"
	"time"
)

// Entry represents a single file or directory on disk.
//
// For symlinks IsDir and Mode describe the link target when it can be
// resolved; IsSymlink stays set so the UI can mark them.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// IsRegular reports whether the entry can be opened as a file preview.
func (e Entry) IsRegular() bool {
	return !e.IsDir && e.Mode.IsRegular()
}

// DiskName is the name as stored on disk. Name is NFC-normalised for display
// and may differ on filesystems that keep decomposed names.
func (e Entry) DiskName() string {
	if e.FullPath == "" {
		return e.Name
	}
	return filepath.Base(e.FullPath)
}
