package fsutil

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHomePath expands a leading ~/ to the user's home directory and converts
// relative paths to absolute paths.
func ExpandHomePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("failed to get current user: %w", err)
		}

		path = filepath.Join(usr.HomeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to convert to absolute path: %w", err)
		}

		return absPath, nil
	}

	return path, nil
}

// JoinWithin joins rel onto base and rejects results that leave base.
func JoinWithin(base, rel string) (string, error) {
	joined := filepath.Join(base, rel)

	relToBase, err := filepath.Rel(base, joined)
	if err != nil || relToBase == ".." || strings.HasPrefix(relToBase, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathOutsideBase, rel)
	}

	return joined, nil
}
