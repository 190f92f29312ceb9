package memory

import (
	"context"
	"sort"
	"time"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ActivityRepository struct {
	store *Store
}

func activityMatches(a *entity.ActivityEntry, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return a.Id == s.ID
	case specification.OwnedBy:
		return a.UserId == s.UserID
	default:
		return true
	}
}

func (r *ActivityRepository) Create(ctx context.Context, entry *entity.ActivityEntry) error {
	if entry.Id == uuid.Nil {
		entry.Id = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	c := *entry
	r.store.activities.Set(entry.Id.String(), &c, 0)
	return nil
}

func (r *ActivityRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error) {
	matched := make([]*entity.ActivityEntry, 0)
	for _, item := range r.store.activities.Items() {
		a := item.Object.(*entity.ActivityEntry)
		ok := true
		for _, spec := range specs {
			if !activityMatches(a, spec) {
				ok = false
				break
			}
		}
		if ok {
			c := *a
			matched = append(matched, &c)
		}
	}

	for _, spec := range specs {
		if ob, ok := spec.(specification.OrderBy); ok {
			sort.SliceStable(matched, func(i, j int) bool {
				if ob.Desc {
					return matched[j].CreatedAt.Before(matched[i].CreatedAt)
				}
				return matched[i].CreatedAt.Before(matched[j].CreatedAt)
			})
		}
	}
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			matched = page(matched, p)
		}
	}
	return matched, nil
}

func (r *ActivityRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	entries, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(entries)), nil
}
