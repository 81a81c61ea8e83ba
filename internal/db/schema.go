package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Tables in dependency order: parents first.
var Tables = []string{"trips", "destinations", "itinerary_items", "accommodations", "transports", "notes"}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id {{pk}},
		name VARCHAR(200) NOT NULL,
		description TEXT NULL,
		start_date VARCHAR(10) NULL,
		end_date VARCHAR(10) NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS destinations (
		id {{pk}},
		trip_id BIGINT NOT NULL,
		name VARCHAR(200) NOT NULL,
		country VARCHAR(100) NULL,
		arrival_date VARCHAR(10) NULL,
		departure_date VARCHAR(10) NULL,
		notes TEXT NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL,
		FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS itinerary_items (
		id {{pk}},
		trip_id BIGINT NOT NULL,
		destination_id BIGINT NULL,
		title VARCHAR(200) NOT NULL,
		description TEXT NULL,
		date VARCHAR(10) NULL,
		start_time VARCHAR(20) NULL,
		end_time VARCHAR(20) NULL,
		location VARCHAR(255) NULL,
		cost {{float}} NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL,
		FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE,
		FOREIGN KEY (destination_id) REFERENCES destinations (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS accommodations (
		id {{pk}},
		trip_id BIGINT NOT NULL,
		name VARCHAR(200) NOT NULL,
		address VARCHAR(255) NULL,
		check_in VARCHAR(10) NULL,
		check_out VARCHAR(10) NULL,
		booking_ref VARCHAR(100) NULL,
		notes TEXT NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL,
		FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS transports (
		id {{pk}},
		trip_id BIGINT NOT NULL,
		type VARCHAR(100) NOT NULL,
		provider VARCHAR(200) NULL,
		departure_location VARCHAR(200) NULL,
		arrival_location VARCHAR(200) NULL,
		departure_date VARCHAR(10) NULL,
		arrival_date VARCHAR(10) NULL,
		booking_ref VARCHAR(100) NULL,
		notes TEXT NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL,
		FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id {{pk}},
		trip_id BIGINT NOT NULL,
		title VARCHAR(200) NOT NULL,
		content TEXT NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL,
		FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE
	)`,
}

// indexes: name -> table(columns). MySQL indexes foreign keys on its own.
var indexes = [][3]string{
	{"ix_destinations_trip_id", "destinations", "trip_id"},
	{"ix_itinerary_items_trip_id", "itinerary_items", "trip_id"},
	{"ix_itinerary_items_destination_id", "itinerary_items", "destination_id"},
	{"ix_accommodations_trip_id", "accommodations", "trip_id"},
	{"ix_transports_trip_id", "transports", "trip_id"},
	{"ix_notes_trip_id", "notes", "trip_id"},
}

func typeReplacer(driver string) *strings.Replacer {
	switch driver {
	case DriverMySQL:
		return strings.NewReplacer("{{pk}}", "BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY", "{{ts}}", "DATETIME(6)", "{{float}}", "DOUBLE")
	case DriverPostgres:
		return strings.NewReplacer("{{pk}}", "BIGSERIAL PRIMARY KEY", "{{ts}}", "TIMESTAMP", "{{float}}", "DOUBLE PRECISION")
	default:
		return strings.NewReplacer("{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{ts}}", "TIMESTAMP", "{{float}}", "REAL")
	}
}

// Statements renders the DDL for a driver.
func Statements(driver string) []string {
	r := typeReplacer(driver)
	out := make([]string, 0, len(schema)+len(indexes))
	for _, stmt := range schema {
		out = append(out, r.Replace(stmt))
	}
	if driver == DriverMySQL {
		return out
	}
	for _, ix := range indexes {
		out = append(out, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", ix[0], ix[1], ix[2]))
	}
	return out
}

// Migrate creates missing tables in one transaction.
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	return WithTx(ctx, conn, func(tx *sqlx.Tx) error {
		for _, stmt := range Statements(conn.DriverName()) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
