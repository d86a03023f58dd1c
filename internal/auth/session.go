// Package auth tracks the signed-in profile for the current run.
// Profiles are local identities; there is no network authentication.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ayumu/zukan/internal/store"
)

// User is the signed-in identity exposed to the rest of the app.
type User struct {
	ID   int
	UID  string
	Name string
}

// ChangeFunc is notified after every sign-in and sign-out. The
// argument is nil on sign-out.
type ChangeFunc func(*User)

// Session holds the current user. Anonymous (nil user) is a valid
// state: browsing works, favoriting is rejected with a sign-in prompt.
type Session struct {
	profiles store.ProfileRepo

	mu        sync.Mutex
	current   *User
	listeners []ChangeFunc
}

// NewSession creates an anonymous session.
func NewSession(profiles store.ProfileRepo) *Session {
	return &Session{profiles: profiles}
}

// Current returns the signed-in user, or nil when anonymous.
func (s *Session) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Profiles lists the stored profiles, oldest first.
func (s *Session) Profiles(ctx context.Context) ([]*store.Profile, error) {
	return s.profiles.List(ctx)
}

// OnChange registers a listener for sign-in/sign-out transitions.
func (s *Session) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SignIn switches the session to an existing profile by name.
func (s *Session) SignIn(ctx context.Context, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name is empty")
	}

	p, err := s.profiles.ByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("no profile named %q", name)
		}
		return nil, err
	}
	return s.setCurrent(p), nil
}

// SignUp creates a new profile and signs it in.
func (s *Session) SignUp(ctx context.Context, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name is empty")
	}

	p, err := s.profiles.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.setCurrent(p), nil
}

// SignOut returns the session to anonymous. The in-memory favorites
// view resets to empty via the change notification.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.current = nil
	listeners := append([]ChangeFunc(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}

func (s *Session) setCurrent(p *store.Profile) *User {
	u := &User{ID: p.ID, UID: p.UID, Name: p.Name}

	s.mu.Lock()
	s.current = u
	listeners := append([]ChangeFunc(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(u)
	}
	return u
}
