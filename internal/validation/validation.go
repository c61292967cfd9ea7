// Package validation checks command-line file arguments before any work
// starts, so a bad path fails fast with a clear message instead of half-way
// through an import or export.
package validation

import (
	"os"
	"path/filepath"

	"fjacquet/wishplan/internal/planerror"
)

// ValidateInputFile checks that path names an existing regular file.
func ValidateInputFile(path string) error {
	if path == "" {
		return planerror.NewInvalidInput("input", "", "an input file is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return planerror.NewInvalidInput("input", path, "file does not exist")
	}
	if err != nil {
		return planerror.NewInvalidInput("input", path, err.Error())
	}
	if info.IsDir() {
		return planerror.NewInvalidInput("input", path, "is a directory, not a file")
	}
	return nil
}

// ValidateOutputFile checks that path is writable: its parent directory must
// exist or be creatable, and path itself must not be an existing directory.
func ValidateOutputFile(path string) error {
	if path == "" {
		return planerror.NewInvalidInput("output", "", "an output file is required")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return planerror.NewInvalidInput("output", path, "is a directory, not a file")
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		return planerror.NewInvalidInput("output", path, "parent is not a directory")
	}
	return nil
}
