package repositories

import (
	"context"
	"fmt"

	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const (
	itineraryTable   = "itinerary_items"
	itineraryColumns = "id, trip_id, destination_id, title, description, date, start_time, end_time, location, cost, created_at, updated_at"
)

type ItineraryItemRepository struct {
	DB sqlx.ExtContext
}

func (r ItineraryItemRepository) q() sqlx.ExtContext { return querier(r.DB) }

func (r ItineraryItemRepository) Create(ctx context.Context, it *models.ItineraryItem) error {
	id, err := insertRow(ctx, r.q(), itineraryTable,
		[]string{"trip_id", "destination_id", "title", "description", "date", "start_time", "end_time", "location", "cost", "created_at", "updated_at"},
		[]any{it.TripID, it.DestinationID, it.Title, it.Description, it.Date, it.StartTime, it.EndTime, it.Location, it.Cost, it.CreatedAt, it.UpdatedAt})
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (r ItineraryItemRepository) GetByID(ctx context.Context, id int64) (models.ItineraryItem, error) {
	return getByID[models.ItineraryItem](ctx, r.q(), itineraryTable, itineraryColumns, "itinerary item", id)
}

func (r ItineraryItemRepository) List(ctx context.Context, tripID, destinationID *int64, p domain.Pagination) ([]models.ItineraryItem, int, error) {
	return listPage[models.ItineraryItem](ctx, r.q(), itineraryTable, itineraryColumns,
		[]filter{{column: "trip_id", value: tripID}, {column: "destination_id", value: destinationID}}, p)
}

// ListByTrip returns a trip's itinerary in calendar order.
func (r ItineraryItemRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.ItineraryItem, error) {
	return listByTrip[models.ItineraryItem](ctx, r.q(), itineraryTable, itineraryColumns, "date, start_time, id", tripID)
}

func (r ItineraryItemRepository) Update(ctx context.Context, it models.ItineraryItem) error {
	return updateByID(ctx, r.q(), itineraryTable, it.ID,
		[]string{"trip_id", "destination_id", "title", "description", "date", "start_time", "end_time", "location", "cost", "updated_at"},
		[]any{it.TripID, it.DestinationID, it.Title, it.Description, it.Date, it.StartTime, it.EndTime, it.Location, it.Cost, it.UpdatedAt})
}

func (r ItineraryItemRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q(), itineraryTable, "itinerary item", id)
}

func (r ItineraryItemRepository) DeleteByTripID(ctx context.Context, tripID int64) error {
	return deleteByTrip(ctx, r.q(), itineraryTable, tripID)
}

// ClearDestination detaches every item that points at a destination about to be removed.
func (r ItineraryItemRepository) ClearDestination(ctx context.Context, destinationID int64, at domain.Timestamp) error {
	query := r.q().Rebind(`UPDATE ` + itineraryTable + ` SET destination_id=NULL, updated_at=? WHERE destination_id=?`)
	if _, err := r.q().ExecContext(ctx, query, at, destinationID); err != nil {
		return fmt.Errorf("clear destination %d on itinerary: %w", destinationID, err)
	}
	return nil
}
