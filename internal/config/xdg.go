package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for axlkeep
// Typically ~/.config/axlkeep/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "axlkeep")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// DataDir returns the XDG-compliant data directory for axlkeep
// Typically ~/.local/share/axlkeep/ on Linux (encrypted file store, keyring file backend)
func DataDir() string {
	return filepath.Join(xdg.DataHome, "axlkeep")
}
