package state

import (
	"github.com/alecthomas/chroma/v2/lexers"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
)

// DefaultPreviewMaxBytes caps how much of a file is buffered for preview.
const DefaultPreviewMaxBytes int64 = 1 << 20

// Preview is the decoded content of the most recently opened file.
type Preview struct {
	Name     string
	Path     string
	Size     int64
	Content  string
	Language string // chroma lexer name, empty when unknown
}

// LoadPreview reads entry in full and decodes it as text. Binary files fail
// with a KindNotText error, files above maxBytes with KindTooLarge.
func LoadPreview(provider fsutil.Provider, entry FileEntry, maxBytes int64) (*Preview, error) {
	data, err := provider.ReadFile(entry.FullPath, maxBytes)
	if err != nil {
		return nil, err
	}
	if !fsutil.IsTextFile(entry.FullPath, data) {
		return nil, fsutil.NotTextError(entry.FullPath)
	}
	return &Preview{
		Name:     entry.Name,
		Path:     entry.FullPath,
		Size:     int64(len(data)),
		Content:  fsutil.DecodeText(data),
		Language: detectLanguage(entry.Name),
	}, nil
}

func detectLanguage(name string) string {
	lexer := lexers.Match(name)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
