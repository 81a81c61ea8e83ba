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

const itineraryModule = "itinerary"

type ItineraryService struct {
	DB        *sqlx.DB
	RequestID string
}

var _ Resource[models.ItineraryItem] = ItineraryService{}

func buildItineraryPatch(existing models.ItineraryItem, raw []byte) (models.ItineraryItem, error) {
	var in models.ItineraryItemPatch
	p, err := decodePayload(raw, &in)
	if err != nil {
		return existing, err
	}
	merged := existing
	if err := setID(p, "trip_id", in.TripID, &merged.TripID); err != nil {
		return existing, err
	}
	setOptional(p, "destination_id", in.DestinationID, &merged.DestinationID)
	if err := setString(p, "title", in.Title, &merged.Title); err != nil {
		return existing, err
	}
	setOptionalString(p, "description", in.Description, &merged.Description)
	setOptionalString(p, "date", in.Date, &merged.Date)
	setOptionalString(p, "start_time", in.StartTime, &merged.StartTime)
	setOptionalString(p, "end_time", in.EndTime, &merged.EndTime)
	setOptionalString(p, "location", in.Location, &merged.Location)
	setOptional(p, "cost", in.Cost, &merged.Cost)
	return merged, validation.Struct(merged)
}

func (s ItineraryService) Create(ctx context.Context, raw []byte) (models.ItineraryItem, error) {
	item, err := buildItineraryPatch(models.ItineraryItem{}, raw)
	if err != nil {
		return models.ItineraryItem{}, err
	}
	now := utils.NowUTC()
	item.CreatedAt, item.UpdatedAt = now, now

	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		if err := requireTrip(ctx, tx, item.TripID); err != nil {
			return err
		}
		if err := requireDestination(ctx, tx, item.DestinationID); err != nil {
			return err
		}
		return repositories.ItineraryItemRepository{DB: tx}.Create(ctx, &item)
	})
	if err != nil {
		return models.ItineraryItem{}, storeError(s.RequestID, itineraryModule, "create", err)
	}
	utils.LogEvent(s.RequestID, itineraryModule, "create", idMsg(item.ID))
	return item, nil
}

func (s ItineraryService) Get(ctx context.Context, id int64) (models.ItineraryItem, error) {
	var item models.ItineraryItem
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		item, err = repositories.ItineraryItemRepository{DB: tx}.GetByID(ctx, id)
		return err
	})
	return item, storeError(s.RequestID, itineraryModule, "get", err)
}

func (s ItineraryService) List(ctx context.Context, q domain.ListQuery) (domain.Page[models.ItineraryItem], error) {
	page, err := q.Resolve()
	if err != nil {
		return domain.Page[models.ItineraryItem]{}, err
	}
	var items []models.ItineraryItem
	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		items, page.Total, err = repositories.ItineraryItemRepository{DB: tx}.List(ctx, q.TripID, q.DestinationID, page)
		return err
	})
	if err != nil {
		return domain.Page[models.ItineraryItem]{}, storeError(s.RequestID, itineraryModule, "list", err)
	}
	return domain.Page[models.ItineraryItem]{Items: items, Meta: page}, nil
}

func (s ItineraryService) Update(ctx context.Context, id int64, raw []byte) (models.ItineraryItem, error) {
	var out models.ItineraryItem
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		repo := repositories.ItineraryItemRepository{DB: tx}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged, err := buildItineraryPatch(existing, raw)
		if err != nil {
			return err
		}
		if reflect.DeepEqual(merged, existing) {
			out = existing
			return nil
		}
		if merged.TripID != existing.TripID {
			if err := requireTrip(ctx, tx, merged.TripID); err != nil {
				return err
			}
		}
		if !sameID(merged.DestinationID, existing.DestinationID) {
			if err := requireDestination(ctx, tx, merged.DestinationID); err != nil {
				return err
			}
		}
		merged.UpdatedAt = utils.NowUTC()
		if err := repo.Update(ctx, merged); err != nil {
			return err
		}
		out = merged
		return nil
	})
	if err != nil {
		return models.ItineraryItem{}, storeError(s.RequestID, itineraryModule, "update", err)
	}
	utils.LogEvent(s.RequestID, itineraryModule, "update", idMsg(id))
	return out, nil
}

func (s ItineraryService) Delete(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		return repositories.ItineraryItemRepository{DB: tx}.Delete(ctx, id)
	})
	if err != nil {
		return storeError(s.RequestID, itineraryModule, "delete", err)
	}
	utils.LogEvent(s.RequestID, itineraryModule, "delete", idMsg(id))
	return nil
}
