package models

// Trip groups journal events under a name and a date range.
type Trip struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	StartDate DateTime `json:"start_date"`
	EndDate   DateTime `json:"end_date"`
	Events    []Event  `json:"events"`
}

// TripCreate is the payload for creating a trip.
type TripCreate struct {
	Name      string   `json:"name" validate:"required"`
	StartDate DateTime `json:"start_date" validate:"required"`
	EndDate   DateTime `json:"end_date" validate:"required"`
}

// TripUpdate carries the full replacement state for an existing trip; the
// server treats PUT as whole-record replacement, so all fields are
// required.
type TripUpdate struct {
	Name      string   `json:"name" validate:"required"`
	StartDate DateTime `json:"start_date" validate:"required"`
	EndDate   DateTime `json:"end_date" validate:"required"`
}
