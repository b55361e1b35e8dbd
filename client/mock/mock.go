// Package mock provides an offline, in-memory implementation of the
// journal client contract. It backs UI development and tests when no
// server is reachable; behavior mirrors the HTTP client, including the
// auth precondition and the error taxonomy (missing records surface as
// BadResponseError with a 404, the way the real server answers).
package mock

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/tripkeeper/client"
	"github.com/dmitrijs2005/tripkeeper/models"
	"github.com/dmitrijs2005/tripkeeper/session"
)

// Client serves the journal contract from process memory. Construct with
// New; the zero value is not usable.
type Client struct {
	mu      sync.Mutex
	session *session.Session

	trips  map[int64]models.Trip
	events map[int64]models.Event
	media  map[int64]models.Media
	nextID int64

	signingKey []byte
	tokenLease time.Duration
	clock      func() time.Time
}

var _ client.Client = (*Client)(nil)

// New returns an empty mock backend with its own session.
func New() *Client {
	return &Client{
		session:    session.New(),
		trips:      make(map[int64]models.Trip),
		events:     make(map[int64]models.Event),
		media:      make(map[int64]models.Media),
		nextID:     1,
		signingKey: []byte("tripkeeper-mock-signing-key"),
		tokenLease: 30 * time.Minute,
		clock:      time.Now,
	}
}

func (c *Client) Session() *session.Session { return c.session }

// Register behaves like Login: the mock keeps no user store, any
// non-empty credentials mint a fresh token.
func (c *Client) Register(ctx context.Context, username, password string) (models.Token, error) {
	return c.Login(ctx, username, password)
}

// Login mints a signed HS256 JWT so code that inspects the bearer value
// sees a realistic token.
func (c *Client) Login(_ context.Context, username, password string) (models.Token, error) {
	if username == "" || password == "" {
		return models.Token{}, &client.BadResponseError{StatusCode: http.StatusUnprocessableEntity}
	}

	now := c.clock()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenLease)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
	if err != nil {
		return models.Token{}, err
	}

	tok := models.Token{
		AccessToken:    signed,
		TokenType:      "Bearer",
		ExpirationDate: now.Add(c.tokenLease),
	}
	c.session.SetToken(tok)
	return tok, nil
}

func (c *Client) Logout() {
	c.session.Clear()
}

// requireAuth mirrors the HTTP client's precondition: token presence is
// the sole authentication predicate.
func (c *Client) requireAuth() error {
	if !c.session.Authenticated() {
		return client.ErrAuthRequired
	}
	return nil
}

func notFound() error {
	return &client.BadResponseError{StatusCode: http.StatusNotFound}
}

func (c *Client) allocateID() int64 {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Client) ListTrips(_ context.Context) ([]models.Trip, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Trip, 0, len(c.trips))
	for id := range c.trips {
		out = append(out, c.materializeTrip(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *Client) GetTrip(_ context.Context, id int64) (models.Trip, error) {
	if err := c.requireAuth(); err != nil {
		return models.Trip{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.trips[id]; !ok {
		return models.Trip{}, notFound()
	}
	return c.materializeTrip(id), nil
}

func (c *Client) CreateTrip(_ context.Context, create models.TripCreate) (models.Trip, error) {
	if err := c.requireAuth(); err != nil {
		return models.Trip{}, err
	}
	if create.Name == "" {
		return models.Trip{}, &client.BadResponseError{StatusCode: http.StatusUnprocessableEntity}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	t := models.Trip{
		ID:        c.allocateID(),
		Name:      create.Name,
		StartDate: create.StartDate,
		EndDate:   create.EndDate,
	}
	c.trips[t.ID] = t
	return c.materializeTrip(t.ID), nil
}

func (c *Client) UpdateTrip(_ context.Context, id int64, update models.TripUpdate) (models.Trip, error) {
	if err := c.requireAuth(); err != nil {
		return models.Trip{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.trips[id]
	if !ok {
		return models.Trip{}, notFound()
	}
	t.Name = update.Name
	t.StartDate = update.StartDate
	t.EndDate = update.EndDate
	c.trips[id] = t
	return c.materializeTrip(id), nil
}

func (c *Client) DeleteTrip(_ context.Context, id int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.trips[id]; !ok {
		return notFound()
	}
	delete(c.trips, id)
	for eid, e := range c.events {
		if e.TripID != id {
			continue
		}
		delete(c.events, eid)
		for mid, m := range c.media {
			if m.EventID == eid {
				delete(c.media, mid)
			}
		}
	}
	return nil
}

func (c *Client) CreateEvent(_ context.Context, create models.EventCreate) (models.Event, error) {
	if err := c.requireAuth(); err != nil {
		return models.Event{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.trips[create.TripID]; !ok {
		return models.Event{}, notFound()
	}
	e := models.Event{
		ID:                     c.allocateID(),
		TripID:                 create.TripID,
		Name:                   create.Name,
		Date:                   create.Date,
		Note:                   create.Note,
		Location:               create.Location,
		TransitionFromPrevious: create.TransitionFromPrevious,
	}
	c.events[e.ID] = e
	return c.materializeEvent(e.ID), nil
}

func (c *Client) UpdateEvent(_ context.Context, id int64, update models.EventUpdate) (models.Event, error) {
	if err := c.requireAuth(); err != nil {
		return models.Event{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.events[id]
	if !ok {
		return models.Event{}, notFound()
	}
	e.Name = update.Name
	e.Date = update.Date
	e.Note = update.Note
	e.Location = update.Location
	e.TransitionFromPrevious = update.TransitionFromPrevious
	c.events[id] = e
	return c.materializeEvent(id), nil
}

func (c *Client) DeleteEvent(_ context.Context, id int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.events[id]; !ok {
		return notFound()
	}
	delete(c.events, id)
	for mid, m := range c.media {
		if m.EventID == id {
			delete(c.media, mid)
		}
	}
	return nil
}

func (c *Client) CreateMedia(_ context.Context, create models.MediaCreate) (models.Media, error) {
	if err := c.requireAuth(); err != nil {
		return models.Media{}, err
	}
	if _, err := models.DecodeMediaData(create.Base64Data); err != nil {
		return models.Media{}, &client.BadResponseError{StatusCode: http.StatusUnprocessableEntity}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.events[create.EventID]; !ok {
		return models.Media{}, notFound()
	}
	m := models.Media{ID: c.allocateID(), EventID: create.EventID}
	c.media[m.ID] = m
	return m, nil
}

func (c *Client) DeleteMedia(_ context.Context, id int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.media[id]; !ok {
		return notFound()
	}
	delete(c.media, id)
	return nil
}

// materializeTrip assembles a trip with its events and their media, the
// way the server nests them in responses. Caller must hold mu.
func (c *Client) materializeTrip(id int64) models.Trip {
	t := c.trips[id]
	t.Events = nil
	for eid, e := range c.events {
		if e.TripID == id {
			t.Events = append(t.Events, c.materializeEvent(eid))
		}
	}
	sort.Slice(t.Events, func(i, j int) bool { return t.Events[i].ID < t.Events[j].ID })
	return t
}

// materializeEvent assembles an event with its media. Caller must hold mu.
func (c *Client) materializeEvent(id int64) models.Event {
	e := c.events[id]
	e.Medias = nil
	for _, m := range c.media {
		if m.EventID == id {
			e.Medias = append(e.Medias, m)
		}
	}
	sort.Slice(e.Medias, func(i, j int) bool { return e.Medias[i].ID < e.Medias[j].ID })
	return e
}
