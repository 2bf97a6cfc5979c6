package fsutil

import "errors"

// ErrEmptyOutputPath is returned when a write target is empty.
var ErrEmptyOutputPath = errors.New("output path cannot be empty")

// ErrPathOutsideBase is returned when a relative path escapes its base directory.
var ErrPathOutsideBase = errors.New("invalid path: file is outside base directory")
