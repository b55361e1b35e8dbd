package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// The journal API exposes a closed endpoint set; paths are built here and
// nowhere else. IDs are numeric, so no URL escaping is needed.
const (
	pathRegister = "/register"
	pathToken    = "/token"
	pathTrips    = "/trips"
	pathEvents   = "/events"
	pathMedia    = "/media"
)

func tripPath(id int64) string  { return pathTrips + "/" + strconv.FormatInt(id, 10) }
func eventPath(id int64) string { return pathEvents + "/" + strconv.FormatInt(id, 10) }
func mediaPath(id int64) string { return pathMedia + "/" + strconv.FormatInt(id, 10) }

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// requestIDHeader carries a per-request correlation id that also
	// appears in log events.
	requestIDHeader = "X-Request-Id"
)

// request describes one API call before it becomes an *http.Request.
// At most one of jsonBody/formBody may be set. Descriptors are built per
// call and discarded after dispatch.
type request struct {
	method   string
	path     string
	bearer   bool
	jsonBody any
	formBody url.Values
}

// build turns a descriptor into a transport-ready *http.Request: resolved
// URL, Accept/Content-Type headers, encoded body, bearer authorization,
// and an X-Request-Id. When bearer is required and the session holds no
// token it returns ErrAuthRequired without touching the network.
func (c *HTTPClient) build(ctx context.Context, r request) (*http.Request, error) {
	var bearerToken string
	if r.bearer {
		tok, ok := c.session.Token()
		if !ok {
			return nil, ErrAuthRequired
		}
		bearerToken = tok.AccessToken
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.jsonBody != nil:
		data, err := json.Marshal(r.jsonBody)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = contentTypeJSON
	case r.formBody != nil:
		body = strings.NewReader(r.formBody.Encode())
		contentType = contentTypeForm
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())
	if r.bearer {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}
	return req, nil
}

// loginForm encodes credentials for the OAuth2-style password grant the
// server expects. Values are percent-encoded; the server parses the form
// by key, so field order on the wire is not significant.
func loginForm(username, password string) url.Values {
	return url.Values{
		"grant_type": {""},
		"username":   {username},
		"password":   {password},
	}
}
