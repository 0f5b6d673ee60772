// Package paths resolves the configuration directory, the workspace root and
// the data directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const appName = "lantern"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LANTERN_CONFIG_DIR"
	EnvRoot      = "LANTERN_ROOT"
	EnvDataDir   = "LANTERN_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/lantern (fallback ~/.config/lantern)
// macOS:   ~/Library/Application Support/lantern
// Windows: %APPDATA%/lantern
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > LANTERN_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveRootDir returns the workspace root following the precedence chain:
// flag > config value > LANTERN_ROOT env > current directory.
func ResolveRootDir(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvRoot)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	return platformDir.getwd()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config value > LANTERN_DATA_DIR env > <root>/.lantern.
func ResolveDataDir(flag, configValue, root string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	return filepath.Join(root, types.DataDirName), nil
}
