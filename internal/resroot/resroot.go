// Package resroot locates the default resource directory.
package resroot

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvResources overrides the resource location (directory or PE file).
const EnvResources = "BITMAPHELPER_RESOURCES"

const appDir = "bitmaphelper"

// Root returns the resource location: the environment override first, then
// the platform data directory.
func Root() string {
	if dir := os.Getenv(EnvResources); dir != "" {
		return dir
	}

	switch runtime.GOOS {
	case "darwin":
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", appDir, "res")
		}
	case "linux":
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, appDir, "res")
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".local", "share", appDir, "res")
		}
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appDir, "res")
		}
	}

	return filepath.Join(os.TempDir(), appDir, "res")
}

// Exists reports whether the resource location is present on disk.
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
