// Package client is the data-access boundary to the remote trip-journal
// API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register/Login/Logout plus CRUD on trips, events, and media.
//  2. A concrete HTTP implementation (see HTTPClient) that builds
//     requests for the closed endpoint set, attaches bearer
//     authorization from its Session, dispatches through an injectable
//     transport, and maps outcomes to a small error taxonomy.
//  3. The dispatcher itself, split into two explicit paths: authenticate
//     (decodes a token and persists it into the session) and dispatch
//     (decodes any record, never touches the session). Session state is
//     mutated from exactly one place.
//
// # Error Handling
//
// Four terminal conditions cover every call: ErrAuthRequired (matched
// with errors.Is), TransportError, BadResponseError, and DecodeError
// (matched with errors.As). Nothing retries; retry policy belongs to the
// caller.
//
// Concurrency & Contexts
//
// An HTTPClient is safe for concurrent use; the session token slot is its
// only shared mutable state. All operations accept context.Context and
// honor cancellation, which surfaces as TransportError.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - Offline:    client/mock
//   - Errors:     ErrAuthRequired, TransportError, BadResponseError, DecodeError
package client
