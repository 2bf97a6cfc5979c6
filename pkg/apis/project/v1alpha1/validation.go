package v1alpha1

import (
	"fmt"
	"regexp"
	"strings"
)

// projectNameRegex matches unscoped npm package names: lowercase, URL-safe, no leading dot or underscore.
var projectNameRegex = regexp.MustCompile(`^[a-z0-9~-][a-z0-9._~-]*$`)

// ProjectNameMaxLength is the maximum length of an npm package name.
const ProjectNameMaxLength = 214

// ValidateProjectName validates that a project name can be used as both a directory
// name and the "name" field of package.json.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProjectNameEmpty
	}

	if len(name) > ProjectNameMaxLength {
		return fmt.Errorf(
			"%w: %q exceeds max %d characters (got %d)",
			ErrProjectNameTooLong, name, ProjectNameMaxLength, len(name),
		)
	}

	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf(
			"%w: %q must be a valid npm package name "+
				"(lowercase letters, numbers, dots, dashes and underscores; "+
				"no spaces; must not start with a dot or underscore)",
			ErrProjectNameInvalid, name,
		)
	}

	return nil
}

// ValidDatabases returns supported database values.
func ValidDatabases() []Database {
	return []Database{
		DatabaseMongoDB,
		DatabaseMySQL,
		DatabasePostgreSQL,
		DatabaseSQLite,
	}
}

// ValidLanguages returns supported language values.
func ValidLanguages() []Language {
	return []Language{LanguageJavaScript, LanguageTypeScript}
}

// ValidPackageManagers returns supported package manager values.
func ValidPackageManagers() []PackageManager {
	return []PackageManager{
		PackageManagerNPM,
		PackageManagerPNPM,
		PackageManagerYarn,
		PackageManagerBun,
	}
}
