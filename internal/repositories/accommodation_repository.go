package repositories

import (
	"context"

	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const (
	accommodationTable   = "accommodations"
	accommodationColumns = "id, trip_id, name, address, check_in, check_out, booking_ref, notes, created_at, updated_at"
)

type AccommodationRepository struct {
	DB sqlx.ExtContext
}

func (r AccommodationRepository) q() sqlx.ExtContext { return querier(r.DB) }

func (r AccommodationRepository) Create(ctx context.Context, a *models.Accommodation) error {
	id, err := insertRow(ctx, r.q(), accommodationTable,
		[]string{"trip_id", "name", "address", "check_in", "check_out", "booking_ref", "notes", "created_at", "updated_at"},
		[]any{a.TripID, a.Name, a.Address, a.CheckIn, a.CheckOut, a.BookingRef, a.Notes, a.CreatedAt, a.UpdatedAt})
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r AccommodationRepository) GetByID(ctx context.Context, id int64) (models.Accommodation, error) {
	return getByID[models.Accommodation](ctx, r.q(), accommodationTable, accommodationColumns, "accommodation", id)
}

func (r AccommodationRepository) List(ctx context.Context, tripID *int64, p domain.Pagination) ([]models.Accommodation, int, error) {
	return listPage[models.Accommodation](ctx, r.q(), accommodationTable, accommodationColumns,
		[]filter{{column: "trip_id", value: tripID}}, p)
}

func (r AccommodationRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Accommodation, error) {
	return listByTrip[models.Accommodation](ctx, r.q(), accommodationTable, accommodationColumns, "check_in, id", tripID)
}

func (r AccommodationRepository) Update(ctx context.Context, a models.Accommodation) error {
	return updateByID(ctx, r.q(), accommodationTable, a.ID,
		[]string{"trip_id", "name", "address", "check_in", "check_out", "booking_ref", "notes", "updated_at"},
		[]any{a.TripID, a.Name, a.Address, a.CheckIn, a.CheckOut, a.BookingRef, a.Notes, a.UpdatedAt})
}

func (r AccommodationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q(), accommodationTable, "accommodation", id)
}

func (r AccommodationRepository) DeleteByTripID(ctx context.Context, tripID int64) error {
	return deleteByTrip(ctx, r.q(), accommodationTable, tripID)
}
