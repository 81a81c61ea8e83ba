package services

import (
	"context"
	"reflect"

	"travelplanner/internal/db"
	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"
	"travelplanner/internal/repositories"
	"travelplanner/internal/utils"
	"travelplanner/internal/validation"

	"github.com/jmoiron/sqlx"
)

const tripModule = "trip"

// TripService manages trips and the lifetime of everything attached to them.
type TripService struct {
	DB        *sqlx.DB
	RequestID string
}

var _ Resource[models.Trip] = TripService{}

// buildTripPatch merges a JSON body into existing respecting key presence.
func buildTripPatch(existing models.Trip, raw []byte) (models.Trip, error) {
	var in models.TripPatch
	p, err := decodePayload(raw, &in)
	if err != nil {
		return existing, err
	}
	merged := existing
	if err := setString(p, "name", in.Name, &merged.Name); err != nil {
		return existing, err
	}
	setOptionalString(p, "description", in.Description, &merged.Description)
	setOptionalString(p, "start_date", in.StartDate, &merged.StartDate)
	setOptionalString(p, "end_date", in.EndDate, &merged.EndDate)
	return merged, validation.Struct(merged)
}

func (s TripService) Create(ctx context.Context, raw []byte) (models.Trip, error) {
	trip, err := buildTripPatch(models.Trip{}, raw)
	if err != nil {
		return models.Trip{}, err
	}
	now := utils.NowUTC()
	trip.CreatedAt, trip.UpdatedAt = now, now

	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		return repositories.TripRepository{DB: tx}.Create(ctx, &trip)
	})
	if err != nil {
		return models.Trip{}, storeError(s.RequestID, tripModule, "create", err)
	}
	utils.LogEvent(s.RequestID, tripModule, "create", idMsg(trip.ID))
	return trip, nil
}

func (s TripService) Get(ctx context.Context, id int64) (models.Trip, error) {
	var trip models.Trip
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		trip, err = repositories.TripRepository{DB: tx}.GetByID(ctx, id)
		return err
	})
	return trip, storeError(s.RequestID, tripModule, "get", err)
}

func (s TripService) List(ctx context.Context, q domain.ListQuery) (domain.Page[models.Trip], error) {
	page, err := q.Resolve()
	if err != nil {
		return domain.Page[models.Trip]{}, err
	}
	var items []models.Trip
	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		items, page.Total, err = repositories.TripRepository{DB: tx}.List(ctx, page)
		return err
	})
	if err != nil {
		return domain.Page[models.Trip]{}, storeError(s.RequestID, tripModule, "list", err)
	}
	return domain.Page[models.Trip]{Items: items, Meta: page}, nil
}

func (s TripService) Update(ctx context.Context, id int64, raw []byte) (models.Trip, error) {
	var out models.Trip
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		repo := repositories.TripRepository{DB: tx}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged, err := buildTripPatch(existing, raw)
		if err != nil {
			return err
		}
		if reflect.DeepEqual(merged, existing) {
			out = existing
			return nil
		}
		merged.UpdatedAt = utils.NowUTC()
		if err := repo.Update(ctx, merged); err != nil {
			return err
		}
		out = merged
		return nil
	})
	if err != nil {
		return models.Trip{}, storeError(s.RequestID, tripModule, "update", err)
	}
	utils.LogEvent(s.RequestID, tripModule, "update", idMsg(id))
	return out, nil
}

// Delete removes a trip together with its destinations, itinerary, stays, transport and notes.
func (s TripService) Delete(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		if err := requireTrip(ctx, tx, id); err != nil {
			return err
		}
		children := []func(context.Context, int64) error{
			repositories.ItineraryItemRepository{DB: tx}.DeleteByTripID,
			repositories.DestinationRepository{DB: tx}.DeleteByTripID,
			repositories.AccommodationRepository{DB: tx}.DeleteByTripID,
			repositories.TransportRepository{DB: tx}.DeleteByTripID,
			repositories.NoteRepository{DB: tx}.DeleteByTripID,
		}
		for _, del := range children {
			if err := del(ctx, id); err != nil {
				return err
			}
		}
		return repositories.TripRepository{DB: tx}.Delete(ctx, id)
	})
	if err != nil {
		return storeError(s.RequestID, tripModule, "delete", err)
	}
	utils.LogEvent(s.RequestID, tripModule, "delete", idMsg(id))
	return nil
}
