package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travelplanner/internal/config"
	intdb "travelplanner/internal/db"
	"travelplanner/internal/domain"

	"github.com/jmoiron/sqlx"
)

// querier falls back to the shared connection when a repository is built without one.
func querier(q sqlx.ExtContext) sqlx.ExtContext {
	if q != nil {
		return q
	}
	return intconfig.DB
}

// filter is one optional "column = ?" condition of a list query.
type filter struct {
	column string
	value  *int64
}

func buildWhere(filters []filter) (string, []any) {
	conds := []string{}
	args := []any{}
	for _, f := range filters {
		if f.value == nil {
			continue
		}
		conds = append(conds, f.column+"=?")
		args = append(args, *f.value)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func getByID[T any](ctx context.Context, q sqlx.ExtContext, table, columns, resource string, id int64) (T, error) {
	var out T
	query := q.Rebind(`SELECT ` + columns + ` FROM ` + table + ` WHERE id=?`)
	if err := sqlx.GetContext(ctx, q, &out, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: resource, Err: err}
		}
		return out, fmt.Errorf("get %s %d: %w", table, id, err)
	}
	return out, nil
}

// listPage returns one window, newest first, plus the total row count for the same filters.
func listPage[T any](ctx context.Context, q sqlx.ExtContext, table, columns string, filters []filter, p domain.Pagination) ([]T, int, error) {
	where, args := buildWhere(filters)

	var total int
	if err := sqlx.GetContext(ctx, q, &total, q.Rebind(`SELECT COUNT(*) FROM `+table+where), args...); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", table, err)
	}

	out := []T{}
	query := q.Rebind(`SELECT ` + columns + ` FROM ` + table + where + ` ORDER BY id DESC LIMIT ? OFFSET ?`)
	if err := sqlx.SelectContext(ctx, q, &out, query, append(args, p.Limit, p.Offset)...); err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", table, err)
	}
	return out, total, nil
}

func listByTrip[T any](ctx context.Context, q sqlx.ExtContext, table, columns, order string, tripID int64) ([]T, error) {
	out := []T{}
	query := q.Rebind(`SELECT ` + columns + ` FROM ` + table + ` WHERE trip_id=? ORDER BY ` + order)
	if err := sqlx.SelectContext(ctx, q, &out, query, tripID); err != nil {
		return nil, fmt.Errorf("list %s by trip: %w", table, err)
	}
	return out, nil
}

func existsByID(ctx context.Context, q sqlx.ExtContext, table string, id int64) (bool, error) {
	var n int
	if err := sqlx.GetContext(ctx, q, &n, q.Rebind(`SELECT COUNT(*) FROM `+table+` WHERE id=?`), id); err != nil {
		return false, fmt.Errorf("check %s %d: %w", table, id, err)
	}
	return n > 0, nil
}

func deleteByID(ctx context.Context, q sqlx.ExtContext, table, resource string, id int64) error {
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM `+table+` WHERE id=?`), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

func deleteByTrip(ctx context.Context, q sqlx.ExtContext, table string, tripID int64) error {
	if _, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM `+table+` WHERE trip_id=?`), tripID); err != nil {
		return fmt.Errorf("delete %s by trip %d: %w", table, tripID, err)
	}
	return nil
}

// updateByID writes the given columns; a zero RowsAffected is not treated as missing
// because MySQL reports 0 for unchanged rows.
func updateByID(ctx context.Context, q sqlx.ExtContext, table string, id int64, columns []string, args []any) error {
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = c + "=?"
	}
	query := q.Rebind(`UPDATE ` + table + ` SET ` + strings.Join(sets, ",") + ` WHERE id=?`)
	if _, err := q.ExecContext(ctx, query, append(args, id)...); err != nil {
		return fmt.Errorf("update %s %d: %w", table, id, err)
	}
	return nil
}

func insertRow(ctx context.Context, q sqlx.ExtContext, table string, columns []string, args []any) (int64, error) {
	ph := make([]string, len(columns))
	for i := range ph {
		ph[i] = "?"
	}
	query := `INSERT INTO ` + table + ` (` + strings.Join(columns, ",") + `) VALUES (` + strings.Join(ph, ",") + `)`
	id, err := intdb.InsertReturningID(ctx, q, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}
