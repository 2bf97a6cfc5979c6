// Package envvar expands ${VAR} references in configuration values.
package envvar

import (
	"os"
	"regexp"
)

// pattern matches ${NAME} and ${NAME:-default}.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Expand replaces ${NAME} with the value of the environment variable NAME, or with
// the default of ${NAME:-default} when NAME is unset or empty. Unset variables
// without a default expand to an empty string.
func Expand(value string) string {
	return ExpandWith(value, os.Getenv)
}

// ExpandWith is Expand with a custom lookup.
func ExpandWith(value string, lookup func(string) string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		if resolved := lookup(groups[1]); resolved != "" {
			return resolved
		}

		return groups[2]
	})
}
