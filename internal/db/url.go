package db

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// DefaultURL is a file-backed SQLite database in the working directory.
const DefaultURL = "sqlite:///./travel_planner.db"

// Target is a database URL resolved to a database/sql driver name and DSN.
type Target struct {
	Driver string
	DSN    string
}

// ParseURL accepts SQLAlchemy-style URLs (sqlite:///rel.db, sqlite:////abs.db,
// mysql+pymysql://u:p@h/db, postgresql+psycopg2://u:p@h/db) as well as plain
// mysql:// and postgres:// URLs.
func ParseURL(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultURL
	}
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return Target{}, fmt.Errorf("database url %q has no scheme", raw)
	}
	scheme = strings.ToLower(scheme)
	if base, _, found := strings.Cut(scheme, "+"); found {
		scheme = base
	}

	switch scheme {
	case "sqlite", "sqlite3":
		return Target{Driver: DriverSQLite, DSN: sqliteDSN(rest)}, nil
	case "mysql", "mariadb":
		dsn, err := mysqlDSN(raw)
		if err != nil {
			return Target{}, err
		}
		return Target{Driver: DriverMySQL, DSN: dsn}, nil
	case "postgres", "postgresql":
		return Target{Driver: DriverPostgres, DSN: "postgres://" + rest}, nil
	default:
		return Target{}, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

// sqliteDSN maps the part after "sqlite://" to a file path. "/./x.db" is relative,
// "//abs/x.db" absolute, and an empty path means a private in-memory database.
func sqliteDSN(rest string) string {
	path, query, _ := strings.Cut(rest, "?")
	switch {
	case path == "" || path == "/" || path == "/:memory:" || path == ":memory:":
		path = ":memory:"
	case strings.HasPrefix(path, "/"):
		path = path[1:]
	}
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if query != "" {
		pragmas = query + "&" + pragmas
	}
	if path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	return "file:" + path + "?" + pragmas
}

func mysqlDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql url: %w", err)
	}
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Hostname() + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for k, v := range u.Query() {
		if len(v) > 0 {
			cfg.Params[k] = v[0]
		}
	}
	return cfg.FormatDSN(), nil
}
