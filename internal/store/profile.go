package store

import (
	"context"
	"fmt"

	"github.com/ayumu/zukan/ent"
	"github.com/ayumu/zukan/ent/favorite"
	"github.com/ayumu/zukan/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Create(ctx context.Context, name string) (*Profile, error) {
	p, err := r.client.Profile.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("profile %q already exists", name)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) ByName(ctx context.Context, name string) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Where(profile.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) List(ctx context.Context) ([]*Profile, error) {
	rows, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	out := make([]*Profile, 0, len(rows))
	for _, p := range rows {
		out = append(out, entProfileToProfile(p))
	}
	return out, nil
}

func (r *profileRepo) Delete(ctx context.Context, id int) error {
	_, err := r.client.Favorite.Delete().
		Where(favorite.ProfileIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile favorites: %w", err)
	}
	if err := r.client.Profile.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func entProfileToProfile(p *ent.Profile) *Profile {
	return &Profile{
		ID:        p.ID,
		UID:       p.UID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
