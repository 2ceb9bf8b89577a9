package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// warningShown checks if the file-store warning has already been shown.
// Uses a marker file in the data directory to avoid repeating on every run.
func warningShown() bool {
	return fileExists(warningMarkerPath())
}

// markWarningShown creates the marker file so the warning isn't repeated.
func markWarningShown() {
	_ = os.WriteFile(warningMarkerPath(), []byte("1"), 0600)
}

func warningMarkerPath() string {
	return filepath.Join(xdg.DataHome, "axlkeep", ".file-store-warning-shown")
}

// quietMode returns true if the user has suppressed warnings via AXLKEEP_QUIET.
func quietMode() bool {
	return os.Getenv("AXLKEEP_QUIET") == "1" || os.Getenv("AXLKEEP_QUIET") == "true"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// warnOnce prints a message to stderr, but only the first time.
// Subsequent invocations are suppressed via a marker file.
// Set AXLKEEP_QUIET=1 to suppress entirely.
func warnOnce(msg string) {
	if quietMode() || warningShown() {
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// markWarningsDone persists the marker so future runs stay quiet.
func markWarningsDone() {
	if !warningShown() {
		markWarningShown()
	}
}

// NewBackend creates a Backend using a platform-appropriate implementation.
// kind may be "keyring" or "file" to force a backend; empty or "auto" tries
// the OS keyring first and falls back to an encrypted file, detecting WSL
// and headless environments that can't use the keyring reliably.
func NewBackend(kind string) (Backend, error) {
	switch kind {
	case "keyring":
		return NewKeyringBackend()
	case "file":
		return newDefaultFileBackend()
	}

	if IsWSL() || IsHeadless() {
		warnOnce("Detected WSL/headless environment, using encrypted file storage")
		backend, err := newDefaultFileBackend()
		if err != nil {
			return nil, err
		}
		markWarningsDone()
		return backend, nil
	}

	backend, err := NewKeyringBackend()
	if err != nil {
		warnOnce(fmt.Sprintf("Keyring unavailable (%v), falling back to encrypted file", err))
		fbackend, ferr := newDefaultFileBackend()
		if ferr != nil {
			return nil, ferr
		}
		markWarningsDone()
		return fbackend, nil
	}

	return backend, nil
}

func newDefaultFileBackend() (*FileBackend, error) {
	return NewFileBackend("", os.Getenv("AXLKEEP_STORE_PASSWORD"))
}

// IsWSL returns true if running under Windows Subsystem for Linux.
func IsWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}

	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

// IsHeadless returns true if running in a headless environment (no display
// server). Only applicable on Linux; macOS and Windows are assumed to have GUI.
func IsHeadless() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
