package fs

import (
	"errors"
	"fmt"
)

// ErrorKind classifies filesystem failures surfaced to the user.
type ErrorKind int

const (
	KindRead ErrorKind = iota + 1
	KindCreate
	KindTooLarge
	KindNotText
)

func (k ErrorKind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindCreate:
		return "create"
	case KindTooLarge:
		return "too large"
	case KindNotText:
		return "not text"
	default:
		return "unknown"
	}
}

var (
	ErrTooLarge    = errors.New("file exceeds preview limit")
	ErrNotText     = errors.New("not a text file")
	ErrNotRegular  = errors.New("not a regular file")
	ErrInvalidName = errors.New("invalid folder name")
)

// Error wraps an OS-reported cause with the operation and path it belongs to.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// ReadError builds a KindRead error for path.
func ReadError(op, path string, err error) error {
	return newError(KindRead, op, path, err)
}

// CreateError builds a KindCreate error for path.
func CreateError(path string, err error) error {
	return newError(KindCreate, "cannot create folder", path, err)
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr.Kind
	}
	return 0
}

func IsRead(err error) bool     { return KindOf(err) == KindRead }
func IsCreate(err error) bool   { return KindOf(err) == KindCreate }
func IsTooLarge(err error) bool { return KindOf(err) == KindTooLarge }
func IsNotText(err error) bool  { return KindOf(err) == KindNotText }

// NotTextError reports that path holds binary content.
func NotTextError(path string) error {
	return newError(KindNotText, "cannot open", path, ErrNotText)
}
