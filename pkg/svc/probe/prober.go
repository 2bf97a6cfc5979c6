package probe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	// Registers the "mysql" database/sql driver.
	_ "github.com/go-sql-driver/mysql"
	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"
)

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 5 * time.Second

// Prober checks that a database accepts connections.
type Prober interface {
	// Probe connects to database at uri. Relative SQLite paths are resolved against baseDir.
	Probe(ctx context.Context, database v1alpha1.Database, uri, baseDir string) error
}

// DatabaseProber pings databases with their Go drivers.
type DatabaseProber struct {
	Timeout time.Duration
}

// NewDatabaseProber creates a prober with DefaultTimeout.
func NewDatabaseProber() *DatabaseProber {
	return &DatabaseProber{Timeout: DefaultTimeout}
}

// Probe implements Prober.
func (p *DatabaseProber) Probe(ctx context.Context, database v1alpha1.Database, uri, baseDir string) error {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch database {
	case v1alpha1.DatabaseMongoDB:
		return probeMongo(ctx, uri)
	case v1alpha1.DatabaseMySQL:
		dsn, err := MySQLDSN(uri)
		if err != nil {
			return err
		}

		return probeSQL(ctx, "mysql", dsn)
	case v1alpha1.DatabasePostgreSQL:
		return probeSQL(ctx, "pgx", uri)
	case v1alpha1.DatabaseSQLite:
		path := SQLitePath(uri, baseDir)

		_, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrSQLiteFileMissing, path)
			}

			return fmt.Errorf("%w: %w", ErrUnreachable, err)
		}

		return probeSQL(ctx, "sqlite3", "file:"+filepath.ToSlash(path)+"?mode=ro")
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDatabase, database)
	}
}

func probeMongo(ctx context.Context, uri string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	defer func() { _ = client.Disconnect(context.WithoutCancel(ctx)) }()

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	return nil
}

func probeSQL(ctx context.Context, driver, dsn string) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	defer func() { _ = db.Close() }()

	err = db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	return nil
}

// SQLitePath strips an optional sqlite: or file: scheme and resolves relative paths against baseDir.
func SQLitePath(uri, baseDir string) string {
	path := uri
	for _, prefix := range []string{"sqlite://", "sqlite:", "file:"} {
		path = strings.TrimPrefix(path, prefix)
	}

	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	return path
}
