package models

import "time"

// Schedule wraps the singleton weekly class schedule. Days maps weekday
// names to an arbitrary structure the backend stores and returns as-is.
type Schedule struct {
	ID        int16     `db:"id"`
	Days      Document  `db:"days"`
	UpdatedAt time.Time `db:"updated_at"`
}
