package session

import (
	"sync"

	"github.com/dmitrijs2005/tripkeeper/models"
)

// Session owns the one live token of a client instance. Safe for
// concurrent use: reads take a shared lock, writes replace the token
// wholesale (last writer wins, no torn reads).
type Session struct {
	mu    sync.RWMutex
	token *models.Token
	subs  map[chan bool]struct{}
}

// New returns an empty, unauthenticated Session.
func New() *Session {
	return &Session{subs: make(map[chan bool]struct{})}
}

// Token returns a copy of the current token, if any.
func (s *Session) Token() (models.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return models.Token{}, false
	}
	return *s.token, true
}

// Authenticated reports whether a token is currently held.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != nil
}

// SetToken replaces the current token and notifies subscribers.
func (s *Session) SetToken(t models.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &t
	s.notifyLocked(true)
}

// Clear drops the current token and notifies subscribers.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	s.notifyLocked(false)
}

// Subscribe registers an observer of the authenticated boolean. The
// current value is delivered immediately, then one emission per token
// mutation. Each subscriber has a one-slot conflating buffer: a reader
// that falls behind sees only the latest value and never blocks a writer.
//
// The returned cancel func detaches the subscriber and closes the
// channel; calling it more than once is safe.
func (s *Session) Subscribe() (<-chan bool, func()) {
	ch := make(chan bool, 1)

	s.mu.Lock()
	ch <- s.token != nil
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// notifyLocked pushes v to every subscriber, dropping an unconsumed stale
// value first. Only the mutators send on subscriber channels and they hold
// mu, so the post-drain send cannot block. Caller must hold mu.
func (s *Session) notifyLocked(v bool) {
	for ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}
