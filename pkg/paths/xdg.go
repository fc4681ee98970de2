// Package paths provides XDG-compliant path resolution for tzclock.
//
// Resolution order:
// 1. TZCLOCK_HOME (portable root) → $TZCLOCK_HOME/{config,state}
// 2. Windows → %APPDATA%\tzclock for both config and state
// 3. XDG env vars → $XDG_*_HOME/tzclock
// 4. Platform defaults → ~/.config/tzclock, ~/.local/state/tzclock
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "tzclock"

const (
	configFileName = "config.toml"
	storeFileName  = "storage.json"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("TZCLOCK_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return appData
		}
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("TZCLOCK_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return localAppData
		}
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the tzclock configuration directory.
// Used for config.toml and the store file.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	if os.Getenv("TZCLOCK_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// StateDir returns the tzclock state directory.
// Used for logs.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	if os.Getenv("TZCLOCK_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// ConfigFile returns the path of config.toml.
func ConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, configFileName)
}

// StoreFile returns the default path of the persisted name→offset table.
func StoreFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, storeFileName)
}

// LogDir returns the directory log files are written to.
func LogDir() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "logs")
}

// EnsureDirs creates all tzclock directories if they don't exist.
func EnsureDirs() error {
	dirs := []string{
		ConfigDir(),
		StateDir(),
		LogDir(),
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
