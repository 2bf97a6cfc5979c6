// Package generator defines the Generator interface implemented by the manifest
// generators that synthesize files from resolved options.
//
// Subpackages:
//   - manifest: package.json and database configuration generators
package generator
