package v1alpha1

import "errors"

// ErrInvalidDatabase is returned when an invalid database is specified.
var ErrInvalidDatabase = errors.New("invalid database")

// ErrInvalidLanguage is returned when an invalid language is specified.
var ErrInvalidLanguage = errors.New("invalid language")

// ErrInvalidPackageManager is returned when an invalid package manager is specified.
var ErrInvalidPackageManager = errors.New("invalid package manager")

// ErrProjectNameEmpty is returned when the project name is empty.
var ErrProjectNameEmpty = errors.New("project name is required")

// ErrProjectNameTooLong is returned when the project name exceeds the npm package name limit.
var ErrProjectNameTooLong = errors.New("project name is too long")

// ErrProjectNameInvalid is returned when the project name is not a valid npm package name.
var ErrProjectNameInvalid = errors.New("project name is invalid")
