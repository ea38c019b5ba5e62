package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Verifies SecureJoin accepts nested paths inside the base.
func TestSecureJoin_AllowsWithinBase(t *testing.T) {
	base := t.TempDir()

	got, err := SecureJoin(base, "government/a-1.jpg")
	if err != nil {
		t.Fatalf("SecureJoin: %v", err)
	}
	baseAbs, _ := filepath.Abs(base)
	if !strings.HasPrefix(got, baseAbs+string(os.PathSeparator)) {
		t.Fatalf("expected path under base, got=%q base=%q", got, baseAbs)
	}
}

// Verifies absolute inputs are rejected.
func TestSecureJoin_RejectsAbsoluteInput(t *testing.T) {
	base := t.TempDir()
	if _, err := SecureJoin(base, filepath.Join(base, "x.txt")); err == nil {
		t.Fatalf("expected error for absolute input")
	}
	if _, err := SecureJoin(base, "/etc/passwd"); err == nil {
		t.Fatalf("expected error for slash-rooted input")
	}
}

// Verifies traversal outside the base is rejected.
func TestSecureJoin_RejectsTraversalOutsideBase(t *testing.T) {
	base := t.TempDir()
	if _, err := SecureJoin(base, "../escape.txt"); err == nil {
		t.Fatalf("expected error for traversal")
	}
}

// Verifies a symlinked directory inside the base is refused.
func TestSecureJoin_RejectsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	base := t.TempDir()
	outside := t.TempDir()
	if err := os.Symlink(outside, filepath.Join(base, "link")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if _, err := SecureJoin(base, "link/file.jpg"); err == nil {
		t.Fatalf("expected error for symlinked path")
	}
}

// Verifies a missing path never counts as a symlink.
func TestEnsurePathNotSymlink_NonExistentOK(t *testing.T) {
	if err := EnsurePathNotSymlink(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

// Verifies targets outside the base are refused.
func TestEnsureNoSymlinkBetween_RejectsOutsideBase(t *testing.T) {
	if err := EnsureNoSymlinkBetween(t.TempDir(), t.TempDir()); err == nil {
		t.Fatalf("expected error when target is outside base")
	}
}
