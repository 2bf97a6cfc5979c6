package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DirPerm is the mode of directories created in a generated project.
	DirPerm = 0o755
	// FilePerm is the mode of files written into a generated project.
	FilePerm = 0o644
)

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("failed to check file %s: %w", path, err)
}

// WriteFile writes content to output, creating parent directories as needed.
func WriteFile(output string, content []byte) error {
	if output == "" {
		return ErrEmptyOutputPath
	}

	output = filepath.Clean(output)
	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, DirPerm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, content, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return nil
}

// EnsureDirs creates each directory below root. Existing directories are left alone.
func EnsureDirs(root string, dirs ...string) error {
	for _, dir := range dirs {
		path, err := JoinWithin(root, dir)
		if err != nil {
			return err
		}

		err = os.MkdirAll(path, DirPerm)
		if err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}

	return nil
}
