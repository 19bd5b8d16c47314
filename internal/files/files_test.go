package files

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/droidium/droidium/internal/apperrors"
)

func TestRejectSymlinkPath_Target(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "target.log")
	if err := os.WriteFile(target, []byte("original"), 0600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	link := filepath.Join(tmp, "droidium.log")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := RejectSymlinkPath(link); err == nil {
		t.Fatalf("expected symlink rejection")
	}
}

func TestRejectSymlinkPath_ParentDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	realDir := filepath.Join(tmp, "real")
	if err := os.MkdirAll(realDir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	linkDir := filepath.Join(tmp, "link")
	if err := os.Symlink(realDir, linkDir); err != nil {
		t.Fatalf("symlink dir: %v", err)
	}

	if err := RejectSymlinkPath(filepath.Join(linkDir, "droidium.log")); err == nil {
		t.Fatalf("expected symlinked directory rejection")
	}
}

func TestRejectSymlinkPath_Regular(t *testing.T) {
	tmp := t.TempDir()
	if err := RejectSymlinkPath(filepath.Join(tmp, "new.log")); err != nil {
		t.Fatalf("RejectSymlinkPath() = %v", err)
	}
	if err := RejectSymlinkPath("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestOpenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droidium.log")
	for _, line := range []string{"one\n", "two\n"} {
		f, err := OpenAppend(path, 0600)
		if err != nil {
			t.Fatalf("OpenAppend() = %v", err)
		}
		if _, err := f.WriteString(line); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Fatalf("content = %q, want appended lines", string(data))
	}
}

func TestOpenAppendMissingDir(t *testing.T) {
	_, err := OpenAppend(filepath.Join(t.TempDir(), "missing", "x.log"), 0600)
	if !apperrors.Is(err, apperrors.KindIO) {
		t.Fatalf("OpenAppend() = %v, want io error", err)
	}
	var pe *os.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *os.PathError cause, got %v", err)
	}
}
