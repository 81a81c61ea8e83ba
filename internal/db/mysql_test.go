package db_test

import (
	"context"
	"os"
	"testing"
	"time"

	"travelplanner/internal/db"
	"travelplanner/internal/domain"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest"
	"github.com/stretchr/testify/require"
)

// startMySQL runs a throwaway MySQL container. Set TRAVEL_PLANNER_DOCKER_TESTS=1 to enable.
func startMySQL(t *testing.T) *sqlx.DB {
	t.Helper()
	if os.Getenv("TRAVEL_PLANNER_DOCKER_TESTS") != "1" {
		t.Skip("set TRAVEL_PLANNER_DOCKER_TESTS=1 to run docker-backed tests")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not connect to docker")
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0",
		Env:        []string{"MYSQL_ROOT_PASSWORD=secret", "MYSQL_DATABASE=travel"},
	})
	require.NoError(t, err, "could not start mysql")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("purge mysql: %v", err)
		}
	})

	target, err := db.ParseURL("mysql://root:secret@" + resource.GetHostPort("3306/tcp") + "/travel")
	require.NoError(t, err)

	var conn *sqlx.DB
	err = pool.Retry(func() error {
		c, err := sqlx.Open(target.Driver, target.DSN)
		if err != nil {
			return err
		}
		if err := c.Ping(); err != nil {
			_ = c.Close()
			return err
		}
		conn = c
		return nil
	})
	require.NoError(t, err, "mysql never became ready")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestMySQLMigrateAndForeignKeys(t *testing.T) {
	conn := startMySQL(t)
	ctx := context.Background()

	require.NoError(t, db.Migrate(ctx, conn))
	require.NoError(t, db.Migrate(ctx, conn), "migrate must be repeatable")

	now := domain.NewTimestamp(time.Now())
	tripID, err := db.InsertReturningID(ctx, conn,
		"INSERT INTO trips (name, created_at, updated_at) VALUES (?, ?, ?)", "Japan", now, now)
	require.NoError(t, err)
	require.Positive(t, tripID)

	var got domain.Timestamp
	require.NoError(t, conn.GetContext(ctx, &got, "SELECT created_at FROM trips WHERE id=?", tripID))
	require.True(t, got.Equal(now.Time), "got %v want %v", got, now)

	_, err = db.InsertReturningID(ctx, conn,
		"INSERT INTO notes (trip_id, title, created_at, updated_at) VALUES (?, ?, ?, ?)", tripID+1000, "orphan", now, now)
	require.Error(t, err)
	require.True(t, db.IsForeignKeyViolation(err), "unexpected error %v", err)
}
