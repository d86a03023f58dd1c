package store

import (
	"context"
	"fmt"

	"github.com/ayumu/zukan/ent"
	"github.com/ayumu/zukan/ent/viewevent"
)

// defaultRecentLimit bounds Recent queries when the caller passes no limit.
const defaultRecentLimit = 50

// viewEventRepo implements ViewEventRepo using the ent client.
type viewEventRepo struct {
	client *ent.Client
}

func (r *viewEventRepo) Append(ctx context.Context, data ViewEventData) error {
	_, err := r.client.ViewEvent.Create().
		SetProfileID(data.ProfileID).
		SetTermID(data.TermID).
		SetTermName(data.TermName).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save view event: %w", err)
	}
	return nil
}

func (r *viewEventRepo) Recent(ctx context.Context, profileID int, limit int) ([]*ViewEvent, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := r.client.ViewEvent.Query().
		Where(viewevent.ProfileIDEQ(profileID)).
		Order(ent.Desc(viewevent.FieldTimestamp), ent.Desc(viewevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query view events: %w", err)
	}

	out := make([]*ViewEvent, 0, len(rows))
	for _, v := range rows {
		out = append(out, &ViewEvent{
			ID:        v.ID,
			ProfileID: v.ProfileID,
			TermID:    v.TermID,
			TermName:  v.TermName,
			Timestamp: v.Timestamp,
		})
	}
	return out, nil
}

func (r *viewEventRepo) Count(ctx context.Context, profileID int) (int, error) {
	n, err := r.client.ViewEvent.Query().
		Where(viewevent.ProfileIDEQ(profileID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count view events: %w", err)
	}
	return n, nil
}
