package config

import (
	"os"
	"path/filepath"

	"github.com/calleventhub/shipdog/internal/constants"
	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

// GlobalConfigDir returns the global shipdog configuration directory.
// The SHIPDOG_HOME environment variable overrides the default ~/.shipdog.
func GlobalConfigDir() (string, error) {
	if home := os.Getenv("SHIPDOG_HOME"); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", shiperrors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, constants.ShipdogHome), nil
}

// ProjectConfigDir returns the project-local configuration directory
// (.shipdog under the current working directory).
func ProjectConfigDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", shiperrors.Wrap(err, "failed to get working directory")
	}
	return filepath.Join(cwd, constants.ShipdogHome), nil
}

// fileExists reports whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
