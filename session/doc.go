// Package session holds client-side authentication state: a single token
// slot plus an observable authenticated/unauthenticated stream.
//
// A Session is owned by one client instance, never global; multiple
// independent sessions can coexist in a process. Token presence is the
// sole authentication predicate exposed to observers.
package session
