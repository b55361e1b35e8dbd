package client

import (
	"errors"
	"fmt"
)

// ErrAuthRequired is returned when an operation needs a bearer token and
// the session holds none. It is raised before any network I/O. Match with
// errors.Is.
var ErrAuthRequired = errors.New("authentication required")

// TransportError wraps a failure below the HTTP layer: connection
// refused, timeout, or context cancellation. The cause is reachable
// through Unwrap, so errors.Is(err, context.Canceled) keeps working.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// BadResponseError reports a status code outside the accepted set for the
// operation. The body is never read on this path.
type BadResponseError struct {
	StatusCode int
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

// DecodeError reports a success status whose body did not parse into the
// expected record. Deliberately distinct from BadResponseError: the
// server accepted the request, the client could not read the answer.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode response: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
