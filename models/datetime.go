package models

import (
	"fmt"
	"time"
)

// DateTime is a time.Time that marshals to the RFC 3339 "internet
// date-time" profile at second precision: rendered in UTC, never with
// fractional seconds. The journal server expects exactly this shape for
// trip and event dates.
type DateTime struct {
	time.Time
}

// NewDateTime normalizes t to the wire precision (UTC, whole seconds).
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.UTC().Truncate(time.Second)}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Truncate(time.Second).Format(time.RFC3339) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	t, err := time.Parse(`"`+time.RFC3339+`"`, string(data))
	if err != nil {
		return fmt.Errorf("parse date-time: %w", err)
	}
	d.Time = t
	return nil
}

// Equal compares wire representations, ignoring sub-second detail.
func (d DateTime) Equal(other DateTime) bool {
	return d.UTC().Truncate(time.Second).Equal(other.UTC().Truncate(time.Second))
}
