package store

import (
	"context"
	"fmt"

	"github.com/ayumu/zukan/ent"
	"github.com/ayumu/zukan/ent/favorite"
)

// favoriteRepo implements FavoriteRepo using the ent client.
type favoriteRepo struct {
	client *ent.Client
}

func (r *favoriteRepo) Get(ctx context.Context, profileID int) (map[string]bool, error) {
	rows, err := r.client.Favorite.Query().
		Where(favorite.ProfileIDEQ(profileID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	out := make(map[string]bool, len(rows))
	for _, f := range rows {
		out[f.TermID] = true
	}
	return out, nil
}

// Set replaces the profile's whole favorite set in one transaction:
// read-modify-write at this boundary, never a per-id patch.
func (r *favoriteRepo) Set(ctx context.Context, profileID int, ids map[string]bool) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Favorite.Delete().
		Where(favorite.ProfileIDEQ(profileID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear favorites: %w", err)
	}

	builders := make([]*ent.FavoriteCreate, 0, len(ids))
	for id, on := range ids {
		if !on {
			continue
		}
		builders = append(builders, tx.Favorite.Create().
			SetProfileID(profileID).
			SetTermID(id))
	}
	if len(builders) > 0 {
		if _, err := tx.Favorite.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save favorites: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit favorites: %w", err)
	}
	return nil
}
