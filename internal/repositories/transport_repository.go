package repositories

import (
	"context"

	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const (
	transportTable   = "transports"
	transportColumns = "id, trip_id, type, provider, departure_location, arrival_location, departure_date, arrival_date, booking_ref, notes, created_at, updated_at"
)

type TransportRepository struct {
	DB sqlx.ExtContext
}

func (r TransportRepository) q() sqlx.ExtContext { return querier(r.DB) }

func (r TransportRepository) Create(ctx context.Context, t *models.Transport) error {
	id, err := insertRow(ctx, r.q(), transportTable,
		[]string{"trip_id", "type", "provider", "departure_location", "arrival_location", "departure_date", "arrival_date", "booking_ref", "notes", "created_at", "updated_at"},
		[]any{t.TripID, t.Type, t.Provider, t.DepartureLocation, t.ArrivalLocation, t.DepartureDate, t.ArrivalDate, t.BookingRef, t.Notes, t.CreatedAt, t.UpdatedAt})
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r TransportRepository) GetByID(ctx context.Context, id int64) (models.Transport, error) {
	return getByID[models.Transport](ctx, r.q(), transportTable, transportColumns, "transport", id)
}

func (r TransportRepository) List(ctx context.Context, tripID *int64, p domain.Pagination) ([]models.Transport, int, error) {
	return listPage[models.Transport](ctx, r.q(), transportTable, transportColumns,
		[]filter{{column: "trip_id", value: tripID}}, p)
}

func (r TransportRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Transport, error) {
	return listByTrip[models.Transport](ctx, r.q(), transportTable, transportColumns, "departure_date, id", tripID)
}

func (r TransportRepository) Update(ctx context.Context, t models.Transport) error {
	return updateByID(ctx, r.q(), transportTable, t.ID,
		[]string{"trip_id", "type", "provider", "departure_location", "arrival_location", "departure_date", "arrival_date", "booking_ref", "notes", "updated_at"},
		[]any{t.TripID, t.Type, t.Provider, t.DepartureLocation, t.ArrivalLocation, t.DepartureDate, t.ArrivalDate, t.BookingRef, t.Notes, t.UpdatedAt})
}

func (r TransportRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q(), transportTable, "transport", id)
}

func (r TransportRepository) DeleteByTripID(ctx context.Context, tripID int64) error {
	return deleteByTrip(ctx, r.q(), transportTable, tripID)
}
