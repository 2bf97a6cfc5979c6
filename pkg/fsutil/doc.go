// Package fsutil provides filesystem helpers for writing a generated project.
//
// Key functionality:
//   - File writing: WriteFile, EnsureDirs, Exists
//   - Path operations: ExpandHomePath, JoinWithin
//
// Subpackages:
//   - generator: manifest generators (package.json, database config)
//   - scaffolder: planning and executing the file writes of a project
package fsutil
