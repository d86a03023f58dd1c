// Package favorites keeps the signed-in profile's favorite set in
// memory and persists it optimistically: the star flips immediately,
// the write happens after, and a failed write never rolls the star
// back. Failed writes are queued and retried on the next persistence
// opportunity.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/store"
)

// ErrSignInRequired is returned by Toggle when no profile is signed
// in. The UI must surface it as a sign-in prompt, never swallow it.
var ErrSignInRequired = errors.New("sign in to favorite terms")

// PersistError reports a failed favorites write. The in-memory toggle
// it followed is still in effect; the write is queued for retry.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("favorites not saved (will retry): %v", e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Service owns the in-memory favorite set for the current profile.
type Service struct {
	repo store.FavoriteRepo
	auth *auth.Session

	mu      sync.Mutex
	set     map[string]bool
	pending bool
}

// NewService wires the service to the auth session: sign-out empties
// the in-memory view, sign-in starts from empty pending a Load.
func NewService(repo store.FavoriteRepo, session *auth.Session) *Service {
	s := &Service{
		repo: repo,
		auth: session,
		set:  make(map[string]bool),
	}
	session.OnChange(func(*auth.User) {
		s.mu.Lock()
		s.set = make(map[string]bool)
		s.pending = false
		s.mu.Unlock()
	})
	return s
}

// Load fetches the signed-in profile's favorites into memory. With no
// profile it just resets to empty.
func (s *Service) Load(ctx context.Context) error {
	user := s.auth.Current()
	if user == nil {
		s.mu.Lock()
		s.set = make(map[string]bool)
		s.mu.Unlock()
		return nil
	}

	got, err := s.repo.Get(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}

	s.mu.Lock()
	s.set = got
	s.mu.Unlock()
	return nil
}

// IsFavorite reports membership of a term id.
func (s *Service) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set[id]
}

// Set returns a copy of the current favorite set.
func (s *Service) Set() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.set))
	for id, on := range s.set {
		if on {
			out[id] = true
		}
	}
	return out
}

// Count returns the number of favorited terms.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, on := range s.set {
		if on {
			n++
		}
	}
	return n
}

// Toggle flips a term's membership and persists the whole set.
//
// Anonymous: nothing changes and ErrSignInRequired is returned. A
// persistence failure returns *PersistError but the flip stands; the
// next successful persist (toggle or Flush) writes the full current
// set, which also drains the retry queue.
func (s *Service) Toggle(ctx context.Context, id string) (bool, error) {
	user := s.auth.Current()
	if user == nil {
		return false, ErrSignInRequired
	}

	s.mu.Lock()
	if s.set[id] {
		delete(s.set, id)
	} else {
		s.set[id] = true
	}
	nowFav := s.set[id]
	snapshot := s.copySetLocked()
	s.mu.Unlock()

	if err := s.repo.Set(ctx, user.ID, snapshot); err != nil {
		s.mu.Lock()
		s.pending = true
		s.mu.Unlock()
		log.WithError(err).Warn("favorites write failed, queued for retry")
		return nowFav, &PersistError{Err: err}
	}

	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
	return nowFav, nil
}

// Pending reports whether a failed write awaits retry.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Flush retries a pending write. A no-op when nothing is pending or
// the session is anonymous.
func (s *Service) Flush(ctx context.Context) error {
	user := s.auth.Current()
	if user == nil {
		return nil
	}

	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return nil
	}
	snapshot := s.copySetLocked()
	s.mu.Unlock()

	if err := s.repo.Set(ctx, user.ID, snapshot); err != nil {
		return &PersistError{Err: err}
	}

	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
	return nil
}

// copySetLocked copies the set; the caller holds mu.
func (s *Service) copySetLocked() map[string]bool {
	out := make(map[string]bool, len(s.set))
	for id, on := range s.set {
		if on {
			out[id] = true
		}
	}
	return out
}
