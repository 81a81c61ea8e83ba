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

const noteModule = "note"

type NoteService struct {
	DB        *sqlx.DB
	RequestID string
}

var _ Resource[models.Note] = NoteService{}

func buildNotePatch(existing models.Note, raw []byte) (models.Note, error) {
	var in models.NotePatch
	p, err := decodePayload(raw, &in)
	if err != nil {
		return existing, err
	}
	merged := existing
	if err := setID(p, "trip_id", in.TripID, &merged.TripID); err != nil {
		return existing, err
	}
	if err := setString(p, "title", in.Title, &merged.Title); err != nil {
		return existing, err
	}
	setOptionalString(p, "content", in.Content, &merged.Content)
	return merged, validation.Struct(merged)
}

func (s NoteService) Create(ctx context.Context, raw []byte) (models.Note, error) {
	rec, err := buildNotePatch(models.Note{}, raw)
	if err != nil {
		return models.Note{}, err
	}
	now := utils.NowUTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		if err := requireTrip(ctx, tx, rec.TripID); err != nil {
			return err
		}
		return repositories.NoteRepository{DB: tx}.Create(ctx, &rec)
	})
	if err != nil {
		return models.Note{}, storeError(s.RequestID, noteModule, "create", err)
	}
	utils.LogEvent(s.RequestID, noteModule, "create", idMsg(rec.ID))
	return rec, nil
}

func (s NoteService) Get(ctx context.Context, id int64) (models.Note, error) {
	var rec models.Note
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		rec, err = repositories.NoteRepository{DB: tx}.GetByID(ctx, id)
		return err
	})
	return rec, storeError(s.RequestID, noteModule, "get", err)
}

func (s NoteService) List(ctx context.Context, q domain.ListQuery) (domain.Page[models.Note], error) {
	page, err := q.Resolve()
	if err != nil {
		return domain.Page[models.Note]{}, err
	}
	var items []models.Note
	err = db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) (err error) {
		items, page.Total, err = repositories.NoteRepository{DB: tx}.List(ctx, q.TripID, page)
		return err
	})
	if err != nil {
		return domain.Page[models.Note]{}, storeError(s.RequestID, noteModule, "list", err)
	}
	return domain.Page[models.Note]{Items: items, Meta: page}, nil
}

func (s NoteService) Update(ctx context.Context, id int64, raw []byte) (models.Note, error) {
	var out models.Note
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		repo := repositories.NoteRepository{DB: tx}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged, err := buildNotePatch(existing, raw)
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
		return models.Note{}, storeError(s.RequestID, noteModule, "update", err)
	}
	utils.LogEvent(s.RequestID, noteModule, "update", idMsg(id))
	return out, nil
}

func (s NoteService) Delete(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, connOrDefault(s.DB), func(tx *sqlx.Tx) error {
		return repositories.NoteRepository{DB: tx}.Delete(ctx, id)
	})
	if err != nil {
		return storeError(s.RequestID, noteModule, "delete", err)
	}
	utils.LogEvent(s.RequestID, noteModule, "delete", idMsg(id))
	return nil
}
