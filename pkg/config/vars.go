package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "isiscb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/isiscb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/isiscb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/isiscb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/isiscb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// BatchesFilePath returns the full path to the batches.yaml file.
// Returns ~/.config/isiscb/batches.yaml by default.
func BatchesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "batches.yaml")
}
