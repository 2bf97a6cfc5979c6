// Package project runs a complete generation: connection probe, file scaffolding,
// dependency installation, git initialization and the next-steps summary.
package project
