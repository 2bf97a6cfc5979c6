package v1alpha1

import (
	"fmt"
	"slices"
	"strings"
)

// --- Enum Interface ---

// EnumValuer is implemented by string-based enum types to provide their valid values.
// The schema command uses this interface to publish enum constraints.
type EnumValuer interface {
	// ValidValues returns all valid string values for this enum type.
	ValidValues() []string
}

// --- Database Types ---

// Database defines the backing database of a generated project.
type Database string

const (
	// DatabaseMongoDB generates a mongoose based project.
	DatabaseMongoDB Database = "MongoDB"
	// DatabaseMySQL generates a mysql2 based project.
	DatabaseMySQL Database = "MySQL"
	// DatabasePostgreSQL generates a node-postgres based project.
	DatabasePostgreSQL Database = "PostgreSQL"
	// DatabaseSQLite generates a sqlite3 based project.
	DatabaseSQLite Database = "SQLite"
)

// databaseAliases maps lower-cased alternative spellings to a Database.
//
//nolint:gochecknoglobals // lookup table
var databaseAliases = map[string]Database{
	"mongo":    DatabaseMongoDB,
	"postgres": DatabasePostgreSQL,
	"pg":       DatabasePostgreSQL,
	"sqlite3":  DatabaseSQLite,
}

// Tag returns the lowercase identifier used in generated file names and in the
// exported database tag of the generated config (e.g. "mongodb").
func (d *Database) Tag() string {
	return strings.ToLower(string(*d))
}

// IsSQL reports whether the database speaks SQL.
func (d *Database) IsSQL() bool {
	return *d != DatabaseMongoDB
}

// Set for Database (pflag.Value interface).
func (d *Database) Set(value string) error {
	for _, db := range ValidDatabases() {
		if strings.EqualFold(value, string(db)) {
			*d = db

			return nil
		}
	}

	if alias, ok := databaseAliases[strings.ToLower(value)]; ok {
		*d = alias

		return nil
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s, %s, %s, %s)",
		ErrInvalidDatabase,
		value,
		DatabaseMongoDB,
		DatabaseMySQL,
		DatabasePostgreSQL,
		DatabaseSQLite,
	)
}

// IsValid checks if the database value is supported.
func (d *Database) IsValid() bool {
	return slices.Contains(ValidDatabases(), *d)
}

// String returns the string representation of the Database.
func (d *Database) String() string {
	return string(*d)
}

// Type returns the type of the Database.
func (d *Database) Type() string {
	return "Database"
}

// ValidValues returns all valid Database values as strings.
func (d *Database) ValidValues() []string {
	return []string{
		string(DatabaseMongoDB),
		string(DatabaseMySQL),
		string(DatabasePostgreSQL),
		string(DatabaseSQLite),
	}
}

// --- Language Types ---

// Language defines the source language of a generated project.
type Language string

const (
	// LanguageJavaScript generates ES module JavaScript.
	LanguageJavaScript Language = "JavaScript"
	// LanguageTypeScript generates CommonJS-compiled TypeScript under src/.
	LanguageTypeScript Language = "TypeScript"
)

// Ext returns the file extension for sources in this language, including the dot.
func (l *Language) Ext() string {
	if *l == LanguageTypeScript {
		return ".ts"
	}

	return ".js"
}

// IsTypeScript reports whether the language is TypeScript.
func (l *Language) IsTypeScript() bool {
	return *l == LanguageTypeScript
}

// Set for Language (pflag.Value interface).
func (l *Language) Set(value string) error {
	for _, lang := range ValidLanguages() {
		if strings.EqualFold(value, string(lang)) {
			*l = lang

			return nil
		}
	}

	switch strings.ToLower(value) {
	case "js":
		*l = LanguageJavaScript

		return nil
	case "ts":
		*l = LanguageTypeScript

		return nil
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s, %s)",
		ErrInvalidLanguage,
		value,
		LanguageJavaScript,
		LanguageTypeScript,
	)
}

// IsValid checks if the language value is supported.
func (l *Language) IsValid() bool {
	return slices.Contains(ValidLanguages(), *l)
}

// String returns the string representation of the Language.
func (l *Language) String() string {
	return string(*l)
}

// Type returns the type of the Language.
func (l *Language) Type() string {
	return "Language"
}

// ValidValues returns all valid Language values as strings.
func (l *Language) ValidValues() []string {
	return []string{string(LanguageJavaScript), string(LanguageTypeScript)}
}

// --- Package Manager Types ---

// PackageManager defines the node package manager used to install dependencies.
type PackageManager string

const (
	// PackageManagerNPM is the npm CLI.
	PackageManagerNPM PackageManager = "npm"
	// PackageManagerPNPM is the pnpm CLI.
	PackageManagerPNPM PackageManager = "pnpm"
	// PackageManagerYarn is the yarn CLI.
	PackageManagerYarn PackageManager = "yarn"
	// PackageManagerBun is the bun CLI.
	PackageManagerBun PackageManager = "bun"
)

// Set for PackageManager (pflag.Value interface).
func (p *PackageManager) Set(value string) error {
	for _, pm := range ValidPackageManagers() {
		if strings.EqualFold(value, string(pm)) {
			*p = pm

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s, %s, %s, %s)",
		ErrInvalidPackageManager,
		value,
		PackageManagerNPM,
		PackageManagerPNPM,
		PackageManagerYarn,
		PackageManagerBun,
	)
}

// String returns the string representation of the PackageManager.
func (p *PackageManager) String() string {
	return string(*p)
}

// Type returns the type of the PackageManager.
func (p *PackageManager) Type() string {
	return "PackageManager"
}

// Default returns the default value for PackageManager (npm).
func (p *PackageManager) Default() any {
	return PackageManagerNPM
}

// ValidValues returns all valid PackageManager values as strings.
func (p *PackageManager) ValidValues() []string {
	return []string{
		string(PackageManagerNPM),
		string(PackageManagerPNPM),
		string(PackageManagerYarn),
		string(PackageManagerBun),
	}
}

// --- Conflict Policy Types ---

// ConflictPolicy decides what happens when a destination file already exists.
type ConflictPolicy string

const (
	// ConflictSkip leaves existing files untouched.
	ConflictSkip ConflictPolicy = "Skip"
	// ConflictPrompt asks the user before overwriting, defaulting to no.
	ConflictPrompt ConflictPolicy = "Prompt"
	// ConflictForce overwrites existing files without asking.
	ConflictForce ConflictPolicy = "Force"
)

// ResolveConflictPolicy derives the policy from the force flag and whether a user can be asked.
func ResolveConflictPolicy(force, interactive bool) ConflictPolicy {
	switch {
	case force:
		return ConflictForce
	case interactive:
		return ConflictPrompt
	default:
		return ConflictSkip
	}
}
