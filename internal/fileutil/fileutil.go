// Package fileutil holds the permission modes and path checks shared by
// everything that writes export files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for exported CSV and workbook files.
const ReadableByAll os.FileMode = 0o644

// DirMode is the permission mode for created output directories.
const DirMode os.FileMode = 0o755

// SanitizeOutputPath cleans an output file path and rejects paths that
// resolve to symlinks. New files in new or existing directories are accepted.
// Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("fileutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("fileutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("fileutil: cannot stat path: %w", err)
	}
	return abs, nil
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
