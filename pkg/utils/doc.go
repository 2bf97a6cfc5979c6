// Package utils provides utility packages for common operations.
//
// This package contains subpackages used across backtool:
//
//   - envvar: ${VAR} and ${VAR:-default} expansion for configuration values
//   - notify: Formatted message display with symbols and colors
//   - runner: External command execution with output capture
package utils
