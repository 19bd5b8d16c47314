// Package files opens the files droidium writes to.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/droidium/droidium/internal/apperrors"
)

// RejectSymlinkPath returns an error if path or its directory is a symlink.
// Missing components are fine; they are created by the caller.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	for _, p := range []string{filepath.Dir(abs), abs} {
		info, err := os.Lstat(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to access path: %w", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("refusing to write to symlink path: %s (symlink detected at %s)", path, p)
		}
	}
	return nil
}

// OpenAppend opens path for appending, creating it with perm if needed.
func OpenAppend(path string, perm os.FileMode) (*os.File, error) {
	if err := RejectSymlinkPath(path); err != nil {
		return nil, apperrors.IO(err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, perm)
	if err != nil {
		return nil, apperrors.IO(fmt.Errorf("open %s: %w", path, err))
	}
	return f, nil
}
