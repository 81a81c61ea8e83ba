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

const accommodationModule = "accommodation"

// AccommodationService manages places to stay on a trip.
type AccommodationService struct {
	DB        *sqlx.DB
	RequestID string
}

var _ Resource[models.Accommodation] = AccommodationService{}

func buildAccommodationPatch(existing models.Accommodation, raw []byte) (models.Accommodation, error) {
	var in models.AccommodationPatch
	p, err := decodePayload(raw, &in)
	if err != nil {
		return existing, err
	}
	merged := existing
	if err := setID(p, "trip_id", in.TripID, &merged.TripID); err != nil {
		return existing, err
	}
	if err := setString(p, "name", in.Name, &merged.Name); err != nil {
		return existing, err
	}
	setOptionalString(p, "address", in.Address, &merged.Address)
	setOptionalString(p, "check_in", in.CheckIn, &merged.CheckIn)
	setOptionalString(p, "check_out", in.CheckOut, &merged.CheckOut)
	setOptionalString(p, "booking_ref", in.BookingRef, &merged.BookingRef)
	setOptionalString(p, "notes", in.Notes, &merged.Notes)
	return merged, validation.Struct(merged)
}

func (s AccommodationService) Create(ctx context.Context, raw []byte) (models.Accommodation, error) {
	rec, err := buildAccommodationPatch(models.Accommodation{}, raw)
	if err != nil {
		return models.Accommodation{}, err
	}
	now := utils.NowUTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		if err := requireTrip(ctx, tx, rec.TripID); err != nil {
			return err
		}
		return repositories.AccommodationRepository{DB: tx}.Create(ctx, &rec)
	})
	if err != nil {
		return models.Accommodation{}, storeError(s.RequestID, accommodationModule, "create", err)
	}
	utils.LogEvent(s.RequestID, accommodationModule, "create", idMsg(rec.ID))
	return rec, nil
}

func (s AccommodationService) Get(ctx context.Context, id int64) (models.Accommodation, error) {
	var rec models.Accommodation
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		rec, err = repositories.AccommodationRepository{DB: tx}.GetByID(ctx, id)
		return err
	})
	return rec, storeError(s.RequestID, accommodationModule, "get", err)
}

func (s AccommodationService) List(ctx context.Context, q domain.ListQuery) (domain.Page[models.Accommodation], error) {
	page, err := q.Resolve()
	if err != nil {
		return domain.Page[models.Accommodation]{}, err
	}
	var items []models.Accommodation
	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		items, page.Total, err = repositories.AccommodationRepository{DB: tx}.List(ctx, q.TripID, page)
		return err
	})
	if err != nil {
		return domain.Page[models.Accommodation]{}, storeError(s.RequestID, accommodationModule, "list", err)
	}
	return domain.Page[models.Accommodation]{Items: items, Meta: page}, nil
}

func (s AccommodationService) Update(ctx context.Context, id int64, raw []byte) (models.Accommodation, error) {
	var out models.Accommodation
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		repo := repositories.AccommodationRepository{DB: tx}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged, err := buildAccommodationPatch(existing, raw)
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
		merged.UpdatedAt = utils.NowUTC()
		if err := repo.Update(ctx, merged); err != nil {
			return err
		}
		out = merged
		return nil
	})
	if err != nil {
		return models.Accommodation{}, storeError(s.RequestID, accommodationModule, "update", err)
	}
	utils.LogEvent(s.RequestID, accommodationModule, "update", idMsg(id))
	return out, nil
}

func (s AccommodationService) Delete(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		return repositories.AccommodationRepository{DB: tx}.Delete(ctx, id)
	})
	if err != nil {
		return storeError(s.RequestID, accommodationModule, "delete", err)
	}
	utils.LogEvent(s.RequestID, accommodationModule, "delete", idMsg(id))
	return nil
}
