// Package collector resolves the generation options from explicit input, asking the user
// for whatever is missing.
package collector
