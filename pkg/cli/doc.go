// Package cli provides the command wiring and terminal UI of backtool.
//
// This package is organized into subpackages:
//
//   - cli/cmd: Cobra commands (root generator, doctor, schema)
//   - cli/ui: User interface components (asciiart, confirm, errorhandler, markdown, prompt)
//
// Commands resolve their services from the di runtime so tests can swap them out.
package cli
