package models

import "travelplanner/internal/domain"

type Destination struct {
	ID            int64            `db:"id" json:"id"`
	TripID        int64            `db:"trip_id" json:"trip_id" validate:"required,gte=1"`
	Name          string           `db:"name" json:"name" validate:"required,max=200"`
	Country       *string          `db:"country" json:"country" validate:"omitempty,max=100"`
	ArrivalDate   *string          `db:"arrival_date" json:"arrival_date" validate:"omitempty,isodate"`
	DepartureDate *string          `db:"departure_date" json:"departure_date" validate:"omitempty,isodate"`
	Notes         *string          `db:"notes" json:"notes"`
	CreatedAt     domain.Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt     domain.Timestamp `db:"updated_at" json:"updated_at"`
}

// DestinationPatch.TripID is only read on create; a destination never moves between trips.
type DestinationPatch struct {
	TripID        *int64  `json:"trip_id"`
	Name          *string `json:"name"`
	Country       *string `json:"country"`
	ArrivalDate   *string `json:"arrival_date"`
	DepartureDate *string `json:"departure_date"`
	Notes         *string `json:"notes"`
}
