// Package session holds the process-wide signed-in identity of a Teka client.
//
// A Session has exactly one writer, the code that signs in or out, and any
// number of readers. Readers either call Current before each privileged
// operation or Subscribe to be told about every transition. A value obtained
// from Current may already be stale by the time it is used.
package session

import (
	"context"
	"sync"
	"time"

	"teka/internal/errors"

	"github.com/google/uuid"
)

// ErrUnauthenticated is returned by Require when nobody is signed in.
var ErrUnauthenticated = errors.New("not signed in")

// Principal is the signed-in member as seen by a client.
type Principal struct {
	ID       uuid.UUID
	Email    string
	FullName string
}

// State is one snapshot of the session.
type State struct {
	Principal   *Principal
	AccessToken string
	ExpiresAt   time.Time
}

// SignedIn reports whether the snapshot carries a principal with a usable token.
func (s State) SignedIn(now time.Time) bool {
	if s.Principal == nil || s.AccessToken == "" {
		return false
	}

	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// Session is an observable State.
type Session struct {
	mu          sync.RWMutex
	state       State
	subscribers map[uint64]chan State
	nextID      uint64
	now         func() time.Time
}

// New returns a signed-out session.
func New() *Session {
	return &Session{
		subscribers: make(map[uint64]chan State),
		now:         time.Now,
	}
}

// Current returns the latest snapshot.
func (s *Session) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Token returns the access token of a live session, or "" when signed out or expired.
func (s *Session) Token() string {
	state := s.Current()
	if !state.SignedIn(s.now()) {
		return ""
	}

	return state.AccessToken
}

// Require returns the principal or ErrUnauthenticated.
func (s *Session) Require() (*Principal, error) {
	state := s.Current()
	if !state.SignedIn(s.now()) {
		return nil, errors.WithStack(ErrUnauthenticated)
	}

	return state.Principal, nil
}

// SignIn replaces the session state and notifies subscribers.
func (s *Session) SignIn(principal *Principal, accessToken string, expiresAt time.Time) {
	s.publish(State{Principal: principal, AccessToken: accessToken, ExpiresAt: expiresAt})
}

// SignOut clears the session and notifies subscribers.
func (s *Session) SignOut() {
	s.publish(State{})
}

// Subscribe returns a channel receiving every later state. A slow reader only
// ever misses intermediate states, never the latest one. The channel is closed
// when ctx is done.
func (s *Session) Subscribe(ctx context.Context) <-chan State {
	ch := make(chan State, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.subscribers, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *Session) publish(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	for _, ch := range s.subscribers {
		// drop the unread older state
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}
