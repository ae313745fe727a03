package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome    = "HOMEPAGE_HOME" // override for tests
	dirName    = ".homepage-uni" // default under $HOME
	dbFilename = "state.db"
)

// DataDir returns the directory where local state is stored (~/.homepage-uni).
// override wins over the HOMEPAGE_HOME environment variable. The directory is
// created with 0700 permissions if it does not exist.
func DataDir(override string) (string, error) {
	custom := override
	if custom == "" {
		custom = os.Getenv(envHome)
	}
	if custom != "" {
		if err := os.MkdirAll(custom, 0o700); err != nil {
			return "", err
		}
		return custom, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the absolute path to the SQLite state file.
func DBPath(override string) (string, error) {
	dir, err := DataDir(override)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}
