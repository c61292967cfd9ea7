// Package store provides file-backed persistence for the wishlist and the
// category databases.
package store

import (
	"os"
	"path/filepath"
)

// defaultDataDir is where new data files are created when no existing file
// is found in the standard locations.
const defaultDataDir = "data"

// FindDataFile looks for a data file in standard locations: the path itself
// when absolute, then the current directory, ./data, and
// ~/.config/wishplan.
func FindDataFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join(defaultDataDir, filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "wishplan", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// writePath decides where to persist a data file: the location it was found
// at, or ./data/<filename> for a file that does not exist yet.
func writePath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	if found, err := FindDataFile(filename); err == nil {
		return found
	}
	return filepath.Join(defaultDataDir, filename)
}

