// Package apis provides the versioned option types of backtool.
//
//   - project: Project generation options, enums and validation
//
// The types are serializable to YAML so a .backtool file can carry them.
package apis
