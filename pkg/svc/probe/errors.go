package probe

import "errors"

var (
	// ErrUnsupportedDatabase is returned for a database the prober does not know.
	ErrUnsupportedDatabase = errors.New("unsupported database")

	// ErrInvalidURI is returned when a connection URI cannot be parsed.
	ErrInvalidURI = errors.New("invalid connection URI")

	// ErrUnreachable wraps connection and ping failures.
	ErrUnreachable = errors.New("database unreachable")

	// ErrSQLiteFileMissing reports that the SQLite file does not exist yet.
	// The generated project creates it on first start.
	ErrSQLiteFileMissing = errors.New("sqlite database file does not exist yet")
)
