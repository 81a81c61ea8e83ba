package models

import "travelplanner/internal/domain"

// ItineraryItem is one activity or event on a trip, optionally tied to a destination.
type ItineraryItem struct {
	ID            int64            `db:"id" json:"id"`
	TripID        int64            `db:"trip_id" json:"trip_id" validate:"required,gte=1"`
	DestinationID *int64           `db:"destination_id" json:"destination_id" validate:"omitempty,gte=1"`
	Title         string           `db:"title" json:"title" validate:"required,max=200"`
	Description   *string          `db:"description" json:"description"`
	Date          *string          `db:"date" json:"date" validate:"omitempty,isodate"`
	StartTime     *string          `db:"start_time" json:"start_time" validate:"omitempty,hhmm"`
	EndTime       *string          `db:"end_time" json:"end_time" validate:"omitempty,hhmm"`
	Location      *string          `db:"location" json:"location" validate:"omitempty,max=255"`
	Cost          *float64         `db:"cost" json:"cost"`
	CreatedAt     domain.Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt     domain.Timestamp `db:"updated_at" json:"updated_at"`
}

type ItineraryItemPatch struct {
	TripID        *int64   `json:"trip_id"`
	DestinationID *int64   `json:"destination_id"`
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Date          *string  `json:"date"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	Location      *string  `json:"location"`
	Cost          *float64 `json:"cost"`
}
