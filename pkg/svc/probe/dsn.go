package probe

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const defaultMySQLPort = "3306"

// MySQLDSN converts a mysql:// URI into a go-sql-driver DSN.
// Values without the mysql:// scheme are returned unchanged, assuming they are DSNs already.
func MySQLDSN(uri string) (string, error) {
	if !strings.HasPrefix(uri, "mysql://") {
		return uri, nil
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	if parsed.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidURI, uri)
	}

	port := parsed.Port()
	if port == "" {
		port = defaultMySQLPort
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(parsed.Hostname(), port)
	cfg.DBName = strings.TrimPrefix(parsed.Path, "/")

	if parsed.User != nil {
		cfg.User = parsed.User.Username()
		cfg.Passwd, _ = parsed.User.Password()
	}

	query := parsed.Query()
	if len(query) > 0 {
		cfg.Params = make(map[string]string, len(query))
		for key := range query {
			cfg.Params[key] = query.Get(key)
		}
	}

	return cfg.FormatDSN(), nil
}
