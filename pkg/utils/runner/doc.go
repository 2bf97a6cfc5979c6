// Package runner executes external processes (package managers, git, node) and
// captures their output, logging each invocation at debug level.
package runner
