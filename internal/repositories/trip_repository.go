package repositories

import (
	"context"

	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const (
	tripTable   = "trips"
	tripColumns = "id, name, description, start_date, end_date, created_at, updated_at"
)

// TripRepository stores trips. A nil DB falls back to config.DB.
type TripRepository struct {
	DB sqlx.ExtContext
}

func (r TripRepository) q() sqlx.ExtContext { return querier(r.DB) }

func (r TripRepository) Create(ctx context.Context, t *models.Trip) error {
	id, err := insertRow(ctx, r.q(), tripTable,
		[]string{"name", "description", "start_date", "end_date", "created_at", "updated_at"},
		[]any{t.Name, t.Description, t.StartDate, t.EndDate, t.CreatedAt, t.UpdatedAt})
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r TripRepository) GetByID(ctx context.Context, id int64) (models.Trip, error) {
	return getByID[models.Trip](ctx, r.q(), tripTable, tripColumns, "trip", id)
}

func (r TripRepository) List(ctx context.Context, p domain.Pagination) ([]models.Trip, int, error) {
	return listPage[models.Trip](ctx, r.q(), tripTable, tripColumns, nil, p)
}

func (r TripRepository) Update(ctx context.Context, t models.Trip) error {
	return updateByID(ctx, r.q(), tripTable, t.ID,
		[]string{"name", "description", "start_date", "end_date", "updated_at"},
		[]any{t.Name, t.Description, t.StartDate, t.EndDate, t.UpdatedAt})
}

func (r TripRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q(), tripTable, "trip", id)
}

func (r TripRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.q(), tripTable, id)
}
