package scaffolder

import "errors"

// Scaffolding errors.
var (
	// ErrTemplateDirNotFound indicates the configured template directory does not exist.
	ErrTemplateDirNotFound = errors.New("template directory not found")

	// ErrTemplateNotFound indicates a required template is missing from the template set.
	ErrTemplateNotFound = errors.New("required template not found")

	// ErrPackageJSONGeneration wraps failures when creating package.json.
	ErrPackageJSONGeneration = errors.New("failed to generate package.json")

	// ErrDatabaseConfigGeneration wraps failures when creating the database config.
	ErrDatabaseConfigGeneration = errors.New("failed to generate database configuration")

	// ErrFileWrite wraps failures when writing a planned file.
	ErrFileWrite = errors.New("failed to write file")
)
