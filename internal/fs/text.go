package fs

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

// TextEncoding is the byte-order-mark family detected at the start of a file.
type TextEncoding int

const (
	EncodingPlain TextEncoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

var binaryExtensions = func() map[string]struct{} {
	exts := []string{
		".7z", ".apk", ".avi", ".bin", ".bmp", ".bz2", ".class", ".dat",
		".dll", ".doc", ".docx", ".dylib", ".exe", ".flac", ".gif", ".gz",
		".ico", ".iso", ".jar", ".jpeg", ".jpg", ".mkv", ".mov", ".mp3",
		".mp4", ".ogg", ".otf", ".pdf", ".png", ".ppt", ".pptx", ".psd",
		".so", ".tar", ".tgz", ".ttf", ".wav", ".wasm", ".woff", ".woff2",
		".xls", ".xlsx", ".xz", ".zip",
	}
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[ext] = struct{}{}
	}
	return set
}()

// IsTextFile determines if content is text or binary.
// The path (if provided) short-circuits obvious binary extensions before sniffing.
func IsTextFile(path string, content []byte) bool {
	if path != "" {
		if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return false
		}
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	if DetectEncoding(sample) != EncodingPlain {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	if nonPrintable == len(sample) {
		return false
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}

// DetectEncoding inspects the byte-order mark of content.
func DetectEncoding(content []byte) TextEncoding {
	switch {
	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8BOM
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE
	default:
		return EncodingPlain
	}
}

// DecodeText converts file content into a valid UTF-8 string. BOMs are
// stripped, UTF-16 is transcoded and stray invalid bytes become U+FFFD.
func DecodeText(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	var text string
	switch DetectEncoding(content) {
	case EncodingUTF8BOM:
		text = string(content[3:])
	case EncodingUTF16LE:
		text = decodeUTF16(content, unicode.LittleEndian)
	case EncodingUTF16BE:
		text = decodeUTF16(content, unicode.BigEndian)
	default:
		text = string(content)
	}
	return strings.ToValidUTF8(text, "�")
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
