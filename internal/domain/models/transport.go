package models

import "travelplanner/internal/domain"

// Transport is one leg of travel: flight, train, car, bus and so on.
type Transport struct {
	ID                int64            `db:"id" json:"id"`
	TripID            int64            `db:"trip_id" json:"trip_id" validate:"required,gte=1"`
	Type              string           `db:"type" json:"type" validate:"required,max=100"`
	Provider          *string          `db:"provider" json:"provider" validate:"omitempty,max=200"`
	DepartureLocation *string          `db:"departure_location" json:"departure_location" validate:"omitempty,max=200"`
	ArrivalLocation   *string          `db:"arrival_location" json:"arrival_location" validate:"omitempty,max=200"`
	DepartureDate     *string          `db:"departure_date" json:"departure_date" validate:"omitempty,isodate"`
	ArrivalDate       *string          `db:"arrival_date" json:"arrival_date" validate:"omitempty,isodate"`
	BookingRef        *string          `db:"booking_ref" json:"booking_ref" validate:"omitempty,max=100"`
	Notes             *string          `db:"notes" json:"notes"`
	CreatedAt         domain.Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt         domain.Timestamp `db:"updated_at" json:"updated_at"`
}

type TransportPatch struct {
	TripID            *int64  `json:"trip_id"`
	Type              *string `json:"type"`
	Provider          *string `json:"provider"`
	DepartureLocation *string `json:"departure_location"`
	ArrivalLocation   *string `json:"arrival_location"`
	DepartureDate     *string `json:"departure_date"`
	ArrivalDate       *string `json:"arrival_date"`
	BookingRef        *string `json:"booking_ref"`
	Notes             *string `json:"notes"`
}
