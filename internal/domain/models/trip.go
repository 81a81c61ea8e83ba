package models

import "travelplanner/internal/domain"

// Trip is the top-level travel plan; every other resource hangs off a trip.
type Trip struct {
	ID          int64            `db:"id" json:"id"`
	Name        string           `db:"name" json:"name" validate:"required,max=200"`
	Description *string          `db:"description" json:"description"`
	StartDate   *string          `db:"start_date" json:"start_date" validate:"omitempty,isodate"`
	EndDate     *string          `db:"end_date" json:"end_date" validate:"omitempty,isodate"`
	CreatedAt   domain.Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt   domain.Timestamp `db:"updated_at" json:"updated_at"`
}

// TripPatch is the decoded form of a trip create/update body.
type TripPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}
