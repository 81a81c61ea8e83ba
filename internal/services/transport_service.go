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

const transportModule = "transport"

type TransportService struct {
	DB        *sqlx.DB
	RequestID string
}

var _ Resource[models.Transport] = TransportService{}

func buildTransportPatch(existing models.Transport, raw []byte) (models.Transport, error) {
	var in models.TransportPatch
	p, err := decodePayload(raw, &in)
	if err != nil {
		return existing, err
	}
	merged := existing
	if err := setID(p, "trip_id", in.TripID, &merged.TripID); err != nil {
		return existing, err
	}
	if err := setString(p, "type", in.Type, &merged.Type); err != nil {
		return existing, err
	}
	setOptionalString(p, "provider", in.Provider, &merged.Provider)
	setOptionalString(p, "departure_location", in.DepartureLocation, &merged.DepartureLocation)
	setOptionalString(p, "arrival_location", in.ArrivalLocation, &merged.ArrivalLocation)
	setOptionalString(p, "departure_date", in.DepartureDate, &merged.DepartureDate)
	setOptionalString(p, "arrival_date", in.ArrivalDate, &merged.ArrivalDate)
	setOptionalString(p, "booking_ref", in.BookingRef, &merged.BookingRef)
	setOptionalString(p, "notes", in.Notes, &merged.Notes)
	return merged, validation.Struct(merged)
}

func (s TransportService) Create(ctx context.Context, raw []byte) (models.Transport, error) {
	rec, err := buildTransportPatch(models.Transport{}, raw)
	if err != nil {
		return models.Transport{}, err
	}
	now := utils.NowUTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		if err := requireTrip(ctx, tx, rec.TripID); err != nil {
			return err
		}
		return repositories.TransportRepository{DB: tx}.Create(ctx, &rec)
	})
	if err != nil {
		return models.Transport{}, storeError(s.RequestID, transportModule, "create", err)
	}
	utils.LogEvent(s.RequestID, transportModule, "create", idMsg(rec.ID))
	return rec, nil
}

func (s TransportService) Get(ctx context.Context, id int64) (models.Transport, error) {
	var rec models.Transport
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		rec, err = repositories.TransportRepository{DB: tx}.GetByID(ctx, id)
		return err
	})
	return rec, storeError(s.RequestID, transportModule, "get", err)
}

func (s TransportService) List(ctx context.Context, q domain.ListQuery) (domain.Page[models.Transport], error) {
	page, err := q.Resolve()
	if err != nil {
		return domain.Page[models.Transport]{}, err
	}
	var items []models.Transport
	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		items, page.Total, err = repositories.TransportRepository{DB: tx}.List(ctx, q.TripID, page)
		return err
	})
	if err != nil {
		return domain.Page[models.Transport]{}, storeError(s.RequestID, transportModule, "list", err)
	}
	return domain.Page[models.Transport]{Items: items, Meta: page}, nil
}

func (s TransportService) Update(ctx context.Context, id int64, raw []byte) (models.Transport, error) {
	var out models.Transport
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		repo := repositories.TransportRepository{DB: tx}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged, err := buildTransportPatch(existing, raw)
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
		return models.Transport{}, storeError(s.RequestID, transportModule, "update", err)
	}
	utils.LogEvent(s.RequestID, transportModule, "update", idMsg(id))
	return out, nil
}

func (s TransportService) Delete(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		return repositories.TransportRepository{DB: tx}.Delete(ctx, id)
	})
	if err != nil {
		return storeError(s.RequestID, transportModule, "delete", err)
	}
	utils.LogEvent(s.RequestID, transportModule, "delete", idMsg(id))
	return nil
}
