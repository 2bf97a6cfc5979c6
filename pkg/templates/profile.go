package templates

import (
	"strconv"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
)

// Profile holds the per-database facts the templates branch on.
type Profile struct {
	// Label is the human readable database name.
	Label string
	// Positional reports whether the driver uses $1, $2 placeholders instead of ?.
	Positional bool
	// Returning reports whether INSERT ... RETURNING is supported.
	Returning bool
	// IDField is the primary key property on a user record.
	IDField string
	// CreateUsersTable is the users DDL, empty for document stores.
	CreateUsersTable string
}

// Param returns the n-th (1-based) query placeholder.
func (p Profile) Param(n int) string {
	if p.Positional {
		return "$" + strconv.Itoa(n)
	}

	return "?"
}

//nolint:gochecknoglobals // static lookup table
var profiles = map[v1alpha1.Database]Profile{
	v1alpha1.DatabaseMongoDB: {
		Label:   "MongoDB",
		IDField: "_id",
	},
	v1alpha1.DatabaseMySQL: {
		Label:   "MySQL",
		IDField: "id",
		CreateUsersTable: `CREATE TABLE IF NOT EXISTS users (
    id INT AUTO_INCREMENT PRIMARY KEY,
    username VARCHAR(255) NOT NULL UNIQUE,
    email VARCHAR(255) NOT NULL UNIQUE,
    password VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
  )`,
	},
	v1alpha1.DatabasePostgreSQL: {
		Label:      "PostgreSQL",
		Positional: true,
		Returning:  true,
		IDField:    "id",
		CreateUsersTable: `CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(255) NOT NULL UNIQUE,
    email VARCHAR(255) NOT NULL UNIQUE,
    password VARCHAR(255) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW()
  )`,
	},
	v1alpha1.DatabaseSQLite: {
		Label:     "SQLite",
		Returning: true,
		IDField:   "id",
		CreateUsersTable: `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
  )`,
	},
}

// ProfileFor returns the profile of a database. Unknown databases get a zero Profile.
func ProfileFor(database v1alpha1.Database) Profile {
	return profiles[database]
}
