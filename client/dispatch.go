package client

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/tripkeeper/models"
)

// send submits a built request through the transport and classifies the
// status code against the accepted set. On success the caller owns the
// response body; on any other status the body is closed unread and a
// BadResponseError carries the code for diagnostics.
func (c *HTTPClient) send(req *http.Request, accept ...int) (*http.Response, error) {
	ctx := req.Context()
	requestID := req.Header.Get(requestIDHeader)

	c.log.Debug(ctx, "dispatching request",
		"method", req.Method, "path", req.URL.Path, "request_id", requestID)

	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	for _, code := range accept {
		if resp.StatusCode == code {
			return resp, nil
		}
	}
	_ = resp.Body.Close()
	c.log.Warn(ctx, "unexpected status",
		"method", req.Method, "path", req.URL.Path,
		"request_id", requestID, "status", resp.StatusCode)
	return nil, &BadResponseError{StatusCode: resp.StatusCode}
}

// dispatch requires exactly 200 and decodes the body into T. It never
// touches session state; token-bearing responses go through authenticate
// instead.
func dispatch[T any](c *HTTPClient, req *http.Request) (T, error) {
	var out T
	resp, err := c.send(req, http.StatusOK)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, &DecodeError{Err: err}
	}
	return out, nil
}

// dispatchVoid accepts 200 or 204 and discards any body.
func (c *HTTPClient) dispatchVoid(req *http.Request) error {
	resp, err := c.send(req, http.StatusOK, http.StatusNoContent)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// authenticate is the only path that mutates session state: it decodes a
// token, stamps the locally computed expiration (the server sends none),
// and stores a copy into the session. Register and login both funnel
// through here; racing calls are last-writer-wins.
func (c *HTTPClient) authenticate(req *http.Request) (models.Token, error) {
	tok, err := dispatch[models.Token](c, req)
	if err != nil {
		return models.Token{}, err
	}
	tok.ExpirationDate = c.clock().Add(c.tokenLease)
	c.session.SetToken(tok)
	return tok, nil
}
