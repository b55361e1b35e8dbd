package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/tripkeeper/config"
	"github.com/dmitrijs2005/tripkeeper/logging"
	"github.com/dmitrijs2005/tripkeeper/models"
	"github.com/dmitrijs2005/tripkeeper/session"
)

// Doer submits a prepared request and returns the raw response. It is the
// transport seam: *http.Client satisfies it, tests substitute fakes. TLS,
// redirects, and connection pooling are the transport's business.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient is the Client implementation backed by an HTTP transport.
// One instance owns one Session; independent sessions in a process are
// simply independent instances.
type HTTPClient struct {
	baseURL    string
	transport  Doer
	session    *session.Session
	validate   *validator.Validate
	log        logging.Logger
	tokenLease time.Duration
	clock      func() time.Time
}

var _ Client = (*HTTPClient)(nil)

// Option tweaks an HTTPClient at construction time.
type Option func(*HTTPClient)

// WithTransport replaces the default HTTP transport.
func WithTransport(d Doer) Option {
	return func(c *HTTPClient) { c.transport = d }
}

// WithLogger attaches a structured logger. The default discards
// everything.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithClock overrides the time source used to stamp token expirations.
func WithClock(now func() time.Time) Option {
	return func(c *HTTPClient) { c.clock = now }
}

// New builds an HTTPClient from cfg. The default transport enforces the
// configured per-request timeout and idle-connection reuse window.
func New(cfg *config.Config, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		session:    session.New(),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		log:        logging.Nop(),
		tokenLease: cfg.TokenLease,
		clock:      time.Now,
		transport: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				IdleConnTimeout: cfg.ResourceTimeout,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Session exposes the authentication state for observers, e.g. a UI
// binding to the authenticated stream.
func (c *HTTPClient) Session() *session.Session { return c.session }

// Register creates an account. The server answers with a token, so a
// successful registration also signs the new user in.
func (c *HTTPClient) Register(ctx context.Context, username, password string) (models.Token, error) {
	creds := models.Credentials{Username: username, Password: password}
	if err := c.validate.Struct(creds); err != nil {
		return models.Token{}, err
	}
	req, err := c.build(ctx, request{method: http.MethodPost, path: pathRegister, jsonBody: creds})
	if err != nil {
		return models.Token{}, err
	}
	return c.authenticate(req)
}

// Login exchanges credentials for a token via the password-grant form.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.Token, error) {
	if err := c.validate.Struct(models.Credentials{Username: username, Password: password}); err != nil {
		return models.Token{}, err
	}
	req, err := c.build(ctx, request{method: http.MethodPost, path: pathToken, formBody: loginForm(username, password)})
	if err != nil {
		return models.Token{}, err
	}
	return c.authenticate(req)
}

// Logout drops the session token. Purely local: the server keeps no
// session to tear down, so no request is issued and Logout cannot fail.
func (c *HTTPClient) Logout() {
	c.session.Clear()
}

// ListTrips returns every trip belonging to the authenticated user.
func (c *HTTPClient) ListTrips(ctx context.Context) ([]models.Trip, error) {
	req, err := c.build(ctx, request{method: http.MethodGet, path: pathTrips, bearer: true})
	if err != nil {
		return nil, err
	}
	return dispatch[[]models.Trip](c, req)
}

func (c *HTTPClient) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	req, err := c.build(ctx, request{method: http.MethodGet, path: tripPath(id), bearer: true})
	if err != nil {
		return models.Trip{}, err
	}
	return dispatch[models.Trip](c, req)
}

func (c *HTTPClient) CreateTrip(ctx context.Context, create models.TripCreate) (models.Trip, error) {
	if err := c.validate.Struct(create); err != nil {
		return models.Trip{}, err
	}
	req, err := c.build(ctx, request{method: http.MethodPost, path: pathTrips, bearer: true, jsonBody: create})
	if err != nil {
		return models.Trip{}, err
	}
	return dispatch[models.Trip](c, req)
}

func (c *HTTPClient) UpdateTrip(ctx context.Context, id int64, update models.TripUpdate) (models.Trip, error) {
	if err := c.validate.Struct(update); err != nil {
		return models.Trip{}, err
	}
	req, err := c.build(ctx, request{method: http.MethodPut, path: tripPath(id), bearer: true, jsonBody: update})
	if err != nil {
		return models.Trip{}, err
	}
	return dispatch[models.Trip](c, req)
}

func (c *HTTPClient) DeleteTrip(ctx context.Context, id int64) error {
	req, err := c.build(ctx, request{method: http.MethodDelete, path: tripPath(id), bearer: true})
	if err != nil {
		return err
	}
	return c.dispatchVoid(req)
}

func (c *HTTPClient) CreateEvent(ctx context.Context, create models.EventCreate) (models.Event, error) {
	if err := c.validate.Struct(create); err != nil {
		return models.Event{}, err
	}
	req, err := c.build(ctx, request{method: http.MethodPost, path: pathEvents, bearer: true, jsonBody: create})
	if err != nil {
		return models.Event{}, err
	}
	return dispatch[models.Event](c, req)
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error) {
	if err := c.validate.Struct(update); err != nil {
		return models.Event{}, err
	}
	req, err := c.build(ctx, request{method: http.MethodPut, path: eventPath(id), bearer: true, jsonBody: update})
	if err != nil {
		return models.Event{}, err
	}
	return dispatch[models.Event](c, req)
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id int64) error {
	req, err := c.build(ctx, request{method: http.MethodDelete, path: eventPath(id), bearer: true})
	if err != nil {
		return err
	}
	return c.dispatchVoid(req)
}

func (c *HTTPClient) CreateMedia(ctx context.Context, create models.MediaCreate) (models.Media, error) {
	if err := c.validate.Struct(create); err != nil {
		return models.Media{}, err
	}
	req, err := c.build(ctx, request{method: http.MethodPost, path: pathMedia, bearer: true, jsonBody: create})
	if err != nil {
		return models.Media{}, err
	}
	return dispatch[models.Media](c, req)
}

func (c *HTTPClient) DeleteMedia(ctx context.Context, id int64) error {
	req, err := c.build(ctx, request{method: http.MethodDelete, path: mediaPath(id), bearer: true})
	if err != nil {
		return err
	}
	return c.dispatchVoid(req)
}
