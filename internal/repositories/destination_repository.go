package repositories

import (
	"context"

	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const (
	destinationTable   = "destinations"
	destinationColumns = "id, trip_id, name, country, arrival_date, departure_date, notes, created_at, updated_at"
)

type DestinationRepository struct {
	DB sqlx.ExtContext
}

func (r DestinationRepository) q() sqlx.ExtContext { return querier(r.DB) }

func (r DestinationRepository) Create(ctx context.Context, d *models.Destination) error {
	id, err := insertRow(ctx, r.q(), destinationTable,
		[]string{"trip_id", "name", "country", "arrival_date", "departure_date", "notes", "created_at", "updated_at"},
		[]any{d.TripID, d.Name, d.Country, d.ArrivalDate, d.DepartureDate, d.Notes, d.CreatedAt, d.UpdatedAt})
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func (r DestinationRepository) GetByID(ctx context.Context, id int64) (models.Destination, error) {
	return getByID[models.Destination](ctx, r.q(), destinationTable, destinationColumns, "destination", id)
}

func (r DestinationRepository) List(ctx context.Context, tripID *int64, p domain.Pagination) ([]models.Destination, int, error) {
	return listPage[models.Destination](ctx, r.q(), destinationTable, destinationColumns,
		[]filter{{column: "trip_id", value: tripID}}, p)
}

// ListByTrip returns a trip's destinations in arrival order.
func (r DestinationRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Destination, error) {
	return listByTrip[models.Destination](ctx, r.q(), destinationTable, destinationColumns, "arrival_date, id", tripID)
}

func (r DestinationRepository) Update(ctx context.Context, d models.Destination) error {
	return updateByID(ctx, r.q(), destinationTable, d.ID,
		[]string{"name", "country", "arrival_date", "departure_date", "notes", "updated_at"},
		[]any{d.Name, d.Country, d.ArrivalDate, d.DepartureDate, d.Notes, d.UpdatedAt})
}

func (r DestinationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q(), destinationTable, "destination", id)
}

func (r DestinationRepository) DeleteByTripID(ctx context.Context, tripID int64) error {
	return deleteByTrip(ctx, r.q(), destinationTable, tripID)
}

func (r DestinationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.q(), destinationTable, id)
}

