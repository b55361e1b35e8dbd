package models

// Location pins an event to a coordinate with an optional address.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Address   string  `json:"address"`
}

// Event is a single stop within a trip.
type Event struct {
	ID                     int64    `json:"id"`
	TripID                 int64    `json:"trip_id"`
	Name                   string   `json:"name"`
	Date                   DateTime `json:"date"`
	Note                   string   `json:"note"`
	Location               Location `json:"location"`
	TransitionFromPrevious string   `json:"transition_from_previous"`
	Medias                 []Media  `json:"medias"`
}

// EventCreate is the payload for creating an event.
//
// Note, Location, and TransitionFromPrevious are optional for the caller
// but always present on the wire: the server expects structural presence,
// so absent values encode as empty strings and zero coordinates rather
// than being omitted.
type EventCreate struct {
	Name                   string   `json:"name" validate:"required"`
	Date                   DateTime `json:"date" validate:"required"`
	Note                   string   `json:"note"`
	Location               Location `json:"location"`
	TransitionFromPrevious string   `json:"transition_from_previous"`
	TripID                 int64    `json:"trip_id" validate:"required"`
}

// EventUpdate is EventCreate without the owning trip: events cannot move
// between trips.
type EventUpdate struct {
	Name                   string   `json:"name" validate:"required"`
	Date                   DateTime `json:"date" validate:"required"`
	Note                   string   `json:"note"`
	Location               Location `json:"location"`
	TransitionFromPrevious string   `json:"transition_from_previous"`
}
