package scaffolder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/devantler-tech/backtool/pkg/fsutil"
	"github.com/devantler-tech/backtool/pkg/templates"
)

// OpenTemplates returns the template set rooted at dir, or the embedded set when dir is empty.
func OpenTemplates(dir string) (fs.FS, error) {
	if dir == "" {
		return templates.Embedded(), nil
	}

	path, err := fsutil.ExpandHomePath(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateDirNotFound, dir, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateDirNotFound, path)
		}

		return nil, fmt.Errorf("failed to check template directory %s: %w", path, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrTemplateDirNotFound, path)
	}

	return os.DirFS(path), nil
}
