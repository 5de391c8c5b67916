//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	fileAttributeHidden       = 0x02
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// IsHidden checks the hidden attribute, falling back to the dot-file rule.
func IsHidden(fullPath string, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}

// ShouldHideFromListing drops compatibility junctions (system + reparse point)
// that can never be listed.
func ShouldHideFromListing(fullPath, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const protected = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protected == protected
}

func fileAttributes(fullPath, name string) (uint32, error) {
	candidates := []string{fullPath}
	if name != "" && name != fullPath {
		candidates = append(candidates, name)
	}

	err := os.ErrInvalid
	for _, target := range candidates {
		if target == "" {
			continue
		}
		var ptr *uint16
		ptr, err = syscall.UTF16PtrFromString(target)
		if err != nil {
			continue
		}
		var attrs uint32
		if attrs, err = syscall.GetFileAttributes(ptr); err == nil {
			return attrs, nil
		}
		if !os.IsNotExist(err) {
			break
		}
	}
	return 0, err
}
