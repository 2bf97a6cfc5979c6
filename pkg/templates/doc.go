// Package templates ships the embedded template tree of a generated project and
// renders it with text/template. Database and language variants are template
// parameters; [Profile] holds the per-database differences.
package templates
