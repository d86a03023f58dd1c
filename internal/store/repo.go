package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("not found")

// Profile is a locally stored user identity.
type Profile struct {
	ID        int
	UID       string
	Name      string
	CreatedAt time.Time
}

// ProfileRepo manages local user profiles.
type ProfileRepo interface {
	// Create adds a new profile. Names are unique.
	Create(ctx context.Context, name string) (*Profile, error)

	// ByName returns the profile with the given name, or ErrNotFound.
	ByName(ctx context.Context, name string) (*Profile, error)

	// List returns all profiles, oldest first.
	List(ctx context.Context) ([]*Profile, error)

	// Delete removes a profile together with its favorites.
	Delete(ctx context.Context, id int) error
}

// FavoriteRepo persists one favorite set per profile. The whole set is
// replaced on write; callers must not assume per-id atomicity across
// concurrent writers.
type FavoriteRepo interface {
	// Get returns the favorite term ids of a profile.
	Get(ctx context.Context, profileID int) (map[string]bool, error)

	// Set replaces the profile's favorite set.
	Set(ctx context.Context, profileID int, ids map[string]bool) error
}

// ViewEvent is one recorded term opening.
type ViewEvent struct {
	ID        int
	ProfileID int
	TermID    string
	TermName  string
	Timestamp time.Time
}

// ViewEventData carries the fields for appending a view event.
type ViewEventData struct {
	ProfileID int
	TermID    string
	TermName  string
}

// ViewEventRepo provides append and recency access to view events.
type ViewEventRepo interface {
	// Append records a term opening.
	Append(ctx context.Context, data ViewEventData) error

	// Recent returns the newest events for a profile scope, newest
	// first. limit <= 0 means a repo-chosen default.
	Recent(ctx context.Context, profileID int, limit int) ([]*ViewEvent, error)

	// Count returns the total number of events for a profile scope.
	Count(ctx context.Context, profileID int) (int, error)
}
