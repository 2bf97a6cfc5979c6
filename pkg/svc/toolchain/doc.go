// Package toolchain checks that git, node and the selected package manager are installed
// in a supported version.
package toolchain
