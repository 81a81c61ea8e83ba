package models

import "travelplanner/internal/domain"

type Accommodation struct {
	ID         int64            `db:"id" json:"id"`
	TripID     int64            `db:"trip_id" json:"trip_id" validate:"required,gte=1"`
	Name       string           `db:"name" json:"name" validate:"required,max=200"`
	Address    *string          `db:"address" json:"address" validate:"omitempty,max=255"`
	CheckIn    *string          `db:"check_in" json:"check_in" validate:"omitempty,isodate"`
	CheckOut   *string          `db:"check_out" json:"check_out" validate:"omitempty,isodate"`
	BookingRef *string          `db:"booking_ref" json:"booking_ref" validate:"omitempty,max=100"`
	Notes      *string          `db:"notes" json:"notes"`
	CreatedAt  domain.Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt  domain.Timestamp `db:"updated_at" json:"updated_at"`
}

type AccommodationPatch struct {
	TripID     *int64  `json:"trip_id"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	BookingRef *string `json:"booking_ref"`
	Notes      *string `json:"notes"`
}
