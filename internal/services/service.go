package services

import (
	"context"
	"fmt"

	intconfig "travelplanner/internal/config"
	"travelplanner/internal/db"
	"travelplanner/internal/domain"
	"travelplanner/internal/repositories"
	"travelplanner/internal/utils"

	"github.com/jmoiron/sqlx"
)

// Resource is the CRUD surface shared by every resource service.
// Create and Update take the raw JSON body so key presence survives decoding.
type Resource[T any] interface {
	Create(ctx context.Context, raw []byte) (T, error)
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, q domain.ListQuery) (domain.Page[T], error)
	Update(ctx context.Context, id int64, raw []byte) (T, error)
	Delete(ctx context.Context, id int64) error
}

func connOrDefault(conn *sqlx.DB) *sqlx.DB {
	if conn != nil {
		return conn
	}
	return intconfig.DB
}

func requireTrip(ctx context.Context, tx sqlx.ExtContext, id int64) error {
	ok, err := repositories.TripRepository{DB: tx}.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func requireDestination(ctx context.Context, tx sqlx.ExtContext, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := repositories.DestinationRepository{DB: tx}.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError{Resource: "destination"}
	}
	return nil
}

// storeError maps a failed write to the error returned to callers.
func storeError(requestID, module, action string, err error) error {
	if err == nil {
		return nil
	}
	if db.IsForeignKeyViolation(err) {
		return domain.NotFoundError{Resource: "referenced record", Err: err}
	}
	if !domain.IsNotFound(err) && !domain.IsValidation(err) {
		utils.LogError(requestID, module, action, err)
	}
	return domain.Internal(fmt.Sprintf("%s %s failed", action, module), err)
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func idMsg(id int64) string { return fmt.Sprintf("id=%d", id) }
