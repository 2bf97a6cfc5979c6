package manifest

import "errors"

// ErrInvalidVersionRange is returned when a dependency version is not a semver constraint.
var ErrInvalidVersionRange = errors.New("invalid dependency version range")

// ErrPackageJSONGeneration wraps failures when creating package.json.
var ErrPackageJSONGeneration = errors.New("failed to generate package.json")

// ErrDatabaseConfigGeneration wraps failures when creating the database config source.
var ErrDatabaseConfigGeneration = errors.New("failed to generate database config")
