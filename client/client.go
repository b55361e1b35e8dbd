package client

import (
	"context"

	"github.com/dmitrijs2005/tripkeeper/models"
	"github.com/dmitrijs2005/tripkeeper/session"
)

// Client is the transport-agnostic contract for the journal API.
//
// Contract:
//   - Register/Login: obtain a token; on success the session becomes
//     authenticated and observers of Session() see true.
//   - Logout: purely local, clears the session, cannot fail.
//   - Every other operation requires an authenticated session and is
//     exactly one request/response round trip: no retries, batching, or
//     caching.
//
// All methods must honor context cancellation/timeouts. Implementations
// must be safe for concurrent use; concurrently issued operations have no
// ordering guarantee (two racing logins leave whichever token decoded
// last).
type Client interface {
	Register(ctx context.Context, username, password string) (models.Token, error)
	Login(ctx context.Context, username, password string) (models.Token, error)
	Logout()

	ListTrips(ctx context.Context) ([]models.Trip, error)
	GetTrip(ctx context.Context, id int64) (models.Trip, error)
	CreateTrip(ctx context.Context, create models.TripCreate) (models.Trip, error)
	UpdateTrip(ctx context.Context, id int64, update models.TripUpdate) (models.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error

	CreateEvent(ctx context.Context, create models.EventCreate) (models.Event, error)
	UpdateEvent(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	CreateMedia(ctx context.Context, create models.MediaCreate) (models.Media, error)
	DeleteMedia(ctx context.Context, id int64) error

	// Session exposes the authentication state, including the observable
	// authenticated stream, for external callers such as a UI.
	Session() *session.Session
}
