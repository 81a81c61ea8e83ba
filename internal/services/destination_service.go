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

const destinationModule = "destination"

type DestinationService struct {
	DB        *sqlx.DB
	RequestID string
}

var _ Resource[models.Destination] = DestinationService{}

// buildDestinationPatch merges a JSON body into existing. trip_id is only read
// for a new destination (existing.ID == 0).
func buildDestinationPatch(existing models.Destination, raw []byte) (models.Destination, error) {
	var in models.DestinationPatch
	p, err := decodePayload(raw, &in)
	if err != nil {
		return existing, err
	}
	merged := existing
	if existing.ID == 0 {
		if err := setID(p, "trip_id", in.TripID, &merged.TripID); err != nil {
			return existing, err
		}
	}
	if err := setString(p, "name", in.Name, &merged.Name); err != nil {
		return existing, err
	}
	setOptionalString(p, "country", in.Country, &merged.Country)
	setOptionalString(p, "arrival_date", in.ArrivalDate, &merged.ArrivalDate)
	setOptionalString(p, "departure_date", in.DepartureDate, &merged.DepartureDate)
	setOptionalString(p, "notes", in.Notes, &merged.Notes)
	return merged, validation.Struct(merged)
}

func (s DestinationService) Create(ctx context.Context, raw []byte) (models.Destination, error) {
	dest, err := buildDestinationPatch(models.Destination{}, raw)
	if err != nil {
		return models.Destination{}, err
	}
	now := utils.NowUTC()
	dest.CreatedAt, dest.UpdatedAt = now, now

	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		if err := requireTrip(ctx, tx, dest.TripID); err != nil {
			return err
		}
		return repositories.DestinationRepository{DB: tx}.Create(ctx, &dest)
	})
	if err != nil {
		return models.Destination{}, storeError(s.RequestID, destinationModule, "create", err)
	}
	utils.LogEvent(s.RequestID, destinationModule, "create", idMsg(dest.ID))
	return dest, nil
}

func (s DestinationService) Get(ctx context.Context, id int64) (models.Destination, error) {
	var dest models.Destination
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		dest, err = repositories.DestinationRepository{DB: tx}.GetByID(ctx, id)
		return err
	})
	return dest, storeError(s.RequestID, destinationModule, "get", err)
}

func (s DestinationService) List(ctx context.Context, q domain.ListQuery) (domain.Page[models.Destination], error) {
	page, err := q.Resolve()
	if err != nil {
		return domain.Page[models.Destination]{}, err
	}
	var items []models.Destination
	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		items, page.Total, err = repositories.DestinationRepository{DB: tx}.List(ctx, q.TripID, page)
		return err
	})
	if err != nil {
		return domain.Page[models.Destination]{}, storeError(s.RequestID, destinationModule, "list", err)
	}
	return domain.Page[models.Destination]{Items: items, Meta: page}, nil
}

func (s DestinationService) Update(ctx context.Context, id int64, raw []byte) (models.Destination, error) {
	var out models.Destination
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		repo := repositories.DestinationRepository{DB: tx}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged, err := buildDestinationPatch(existing, raw)
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
		return models.Destination{}, storeError(s.RequestID, destinationModule, "update", err)
	}
	utils.LogEvent(s.RequestID, destinationModule, "update", idMsg(id))
	return out, nil
}

// Delete removes a destination; itinerary items that pointed at it are kept with no destination.
func (s DestinationService) Delete(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		ok, err := repositories.DestinationRepository{DB: tx}.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NotFoundError{Resource: "destination"}
		}
		if err := (repositories.ItineraryItemRepository{DB: tx}).ClearDestination(ctx, id, utils.NowUTC()); err != nil {
			return err
		}
		return repositories.DestinationRepository{DB: tx}.Delete(ctx, id)
	})
	if err != nil {
		return storeError(s.RequestID, destinationModule, "delete", err)
	}
	utils.LogEvent(s.RequestID, destinationModule, "delete", idMsg(id))
	return nil
}
