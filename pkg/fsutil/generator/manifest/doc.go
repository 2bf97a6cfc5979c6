// Package manifest generates the package.json and database configuration source of
// a project. Both are pure functions of the resolved options.
package manifest
