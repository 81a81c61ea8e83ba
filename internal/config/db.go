package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"travelplanner/internal/db"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

var (
	DB   *sqlx.DB
	dbMu sync.Mutex
)

// Open connects to the store named by a database URL and applies pool settings.
func Open(ctx context.Context, rawURL string) (*sqlx.DB, error) {
	target, err := db.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", target.Driver, err)
	}

	if target.Driver == db.DriverSQLite {
		// One connection keeps writers serialized and in-memory databases alive.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(25)
		conn.SetConnMaxLifetime(10 * time.Minute)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", target.Driver, err)
	}
	return conn, nil
}

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB(ctx context.Context, env Env) (*sqlx.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB, nil
	}

	conn, err := Open(ctx, env.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if env.AutoMigrate {
		if err := db.Migrate(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	DB = conn
	logrus.WithField("driver", conn.DriverName()).Info("database connected")
	return DB, nil
}

// EnsureDB pings the shared connection.
func EnsureDB(ctx context.Context) error {
	dbMu.Lock()
	conn := DB
	dbMu.Unlock()

	if conn == nil {
		return fmt.Errorf("database not connected")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return conn.PingContext(pingCtx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
