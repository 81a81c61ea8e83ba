package repositories

import (
	"context"

	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const (
	noteTable   = "notes"
	noteColumns = "id, trip_id, title, content, created_at, updated_at"
)

type NoteRepository struct {
	DB sqlx.ExtContext
}

func (r NoteRepository) q() sqlx.ExtContext { return querier(r.DB) }

func (r NoteRepository) Create(ctx context.Context, n *models.Note) error {
	id, err := insertRow(ctx, r.q(), noteTable,
		[]string{"trip_id", "title", "content", "created_at", "updated_at"},
		[]any{n.TripID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt})
	if err != nil {
		return err
	}
	n.ID = id
	return nil
}

func (r NoteRepository) GetByID(ctx context.Context, id int64) (models.Note, error) {
	return getByID[models.Note](ctx, r.q(), noteTable, noteColumns, "note", id)
}

func (r NoteRepository) List(ctx context.Context, tripID *int64, p domain.Pagination) ([]models.Note, int, error) {
	return listPage[models.Note](ctx, r.q(), noteTable, noteColumns,
		[]filter{{column: "trip_id", value: tripID}}, p)
}

func (r NoteRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Note, error) {
	return listByTrip[models.Note](ctx, r.q(), noteTable, noteColumns, "id", tripID)
}

func (r NoteRepository) Update(ctx context.Context, n models.Note) error {
	return updateByID(ctx, r.q(), noteTable, n.ID,
		[]string{"trip_id", "title", "content", "updated_at"},
		[]any{n.TripID, n.Title, n.Content, n.UpdatedAt})
}

func (r NoteRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q(), noteTable, "note", id)
}

func (r NoteRepository) DeleteByTripID(ctx context.Context, tripID int64) error {
	return deleteByTrip(ctx, r.q(), noteTable, tripID)
}
