package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SignInSignOut(t *testing.T) {
	s := New()

	_, err := s.Require()
	assert.True(t, errors.Is(err, ErrUnauthenticated))
	assert.Empty(t, s.Token())

	principal := &Principal{ID: uuid.New(), Email: "amani@example.cd"}
	s.SignIn(principal, "tok", time.Time{})

	got, err := s.Require()
	require.NoError(t, err)
	assert.Equal(t, principal, got)
	assert.Equal(t, "tok", s.Token())

	s.SignOut()
	assert.Nil(t, s.Current().Principal)
	assert.Empty(t, s.Token())
}

func TestSession_ExpiredTokenIsSignedOut(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New()
	s.now = func() time.Time { return now }

	s.SignIn(&Principal{ID: uuid.New()}, "tok", now.Add(time.Minute))
	assert.Equal(t, "tok", s.Token())

	now = now.Add(2 * time.Minute)
	assert.Empty(t, s.Token())
	_, err := s.Require()
	assert.True(t, errors.Is(err, ErrUnauthenticated))
}

func TestSession_SubscribersSeeEveryTransition(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := s.Subscribe(ctx)
	second := s.Subscribe(ctx)
	principal := &Principal{ID: uuid.New()}

	s.SignIn(principal, "tok", time.Time{})
	for _, ch := range []<-chan State{first, second} {
		state := <-ch
		assert.Equal(t, principal, state.Principal)
	}

	s.SignOut()
	for _, ch := range []<-chan State{first, second} {
		state := <-ch
		assert.Nil(t, state.Principal)
	}
}

func TestSession_SlowSubscriberGetsLatestState(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := s.Subscribe(ctx)

	s.SignIn(&Principal{ID: uuid.New()}, "first", time.Time{})
	s.SignIn(&Principal{ID: uuid.New()}, "second", time.Time{})
	s.SignOut()

	state := <-updates
	assert.Nil(t, state.Principal)
	assert.Empty(t, state.AccessToken)

	select {
	case extra := <-updates:
		t.Fatalf("unexpected extra state %+v", extra)
	default:
	}
}

func TestSession_SubscriptionClosedWithContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	updates := s.Subscribe(ctx)

	cancel()

	select {
	case _, open := <-updates:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}

	// publishing after unsubscribe must not block or panic
	s.SignOut()
}

func TestSession_ConcurrentReaders(t *testing.T) {
	s := New()
	principal := &Principal{ID: uuid.New()}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				state := s.Current()
				if state.Principal != nil {
					assert.Equal(t, principal.ID, state.Principal.ID)
				}
			}
		}()
	}

	for range 50 {
		s.SignIn(principal, "tok", time.Time{})
		s.SignOut()
	}
	wg.Wait()
}
