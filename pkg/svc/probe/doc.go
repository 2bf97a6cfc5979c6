// Package probe checks that the database selected for a generated project is reachable.
//
// MongoDB is pinged with the official Go driver; the SQL databases are opened through
// database/sql with go-sql-driver/mysql, pgx and go-sqlite3.
package probe
