// Package where resolves the directories tikload keeps its files in.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tikload-cli/tikload/constant"
	"github.com/tikload-cli/tikload/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "TIKLOAD_CONFIG_PATH"

// mkdir creates path if needed and returns it.
func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// userDir joins the application name onto a per-user base directory,
// or onto fallback when the system cannot report one.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		dir = fallback
	}
	return mkdir(filepath.Join(dir, constant.Tikload))
}

// Config is the configuration directory, honouring TIKLOAD_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return userDir(os.UserConfigDir, ".")
}

// Cache is the per-user cache directory.
func Cache() string {
	return userDir(os.UserCacheDir, filepath.Join(".", "cache"))
}

// Logs is the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Version is the file caching the latest release lookup.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}

// Temp is a scratch directory cleared on startup.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.Tikload))
}
