package models

import "travelplanner/internal/domain"

type Note struct {
	ID        int64            `db:"id" json:"id"`
	TripID    int64            `db:"trip_id" json:"trip_id" validate:"required,gte=1"`
	Title     string           `db:"title" json:"title" validate:"required,max=200"`
	Content   *string          `db:"content" json:"content"`
	CreatedAt domain.Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt domain.Timestamp `db:"updated_at" json:"updated_at"`
}

type NotePatch struct {
	TripID  *int64  `json:"trip_id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
