// Package installer installs the dependencies of a generated project by shelling out
// to npm, pnpm, yarn or bun.
package installer
