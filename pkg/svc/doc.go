// Package svc provides the service layer of backtool.
//
// Subpackages:
//   - collector: resolves generation options from explicit input and interactive prompts
//   - installer: installs the generated project's dependencies with a package manager
//   - vcs: initializes a git repository in the generated project
//   - probe: checks that the selected database is reachable
//   - toolchain: reports versions of git, node and the package manager
//   - project: orchestrates a full generation run
package svc
