package memory

import (
	"context"
	"sort"
	"time"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/contract"
	"voicepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository struct {
	store *Store
}

func cloneNote(n *entity.Note) *entity.Note {
	if n == nil {
		return nil
	}
	c := *n
	if n.Tags != nil {
		c.Tags = append([]string(nil), n.Tags...)
	}
	if n.AudioURL != nil {
		v := *n.AudioURL
		c.AudioURL = &v
	}
	if n.FolderId != nil {
		v := *n.FolderId
		c.FolderId = &v
	}
	return &c
}

func noteMatches(n *entity.Note, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return n.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if n.Id == id {
				return true
			}
		}
		return false
	case specification.OwnedBy:
		return n.UserId == s.UserID
	case specification.ActiveOnly:
		return !n.IsDeleted
	case specification.ByFolderID:
		return n.FolderId != nil && *n.FolderId == s.FolderID
	default:
		// Ordering and pagination are applied after filtering.
		return true
	}
}

func sortAndPageNotes(notes []*entity.Note, specs []specification.Specification) []*entity.Note {
	for _, spec := range specs {
		if ob, ok := spec.(specification.OrderBy); ok {
			sort.SliceStable(notes, func(i, j int) bool {
				a, b := notes[i], notes[j]
				var ta, tb time.Time
				switch ob.Field {
				case "updated_at":
					ta, tb = a.UpdatedAt, b.UpdatedAt
				default:
					ta, tb = a.CreatedAt, b.CreatedAt
				}
				if ob.Desc {
					return tb.Before(ta)
				}
				return ta.Before(tb)
			})
		}
	}
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			notes = page(notes, p)
		}
	}
	return notes
}

func page[T any](items []T, p specification.Pagination) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	items = items[p.Offset:]
	if p.Limit > 0 && p.Limit < len(items) {
		items = items[:p.Limit]
	}
	return items
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	now := time.Now()
	if note.Id == uuid.Nil {
		note.Id = uuid.New()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = now
	}
	r.store.notes.Set(note.Id.String(), cloneNote(note), 0)
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	// Replace refuses to create a missing key, so a permanently deleted
	// note stays gone even when a write races the delete.
	if err := r.store.notes.Replace(note.Id.String(), cloneNote(note), 0); err != nil {
		return contract.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.notes.Delete(id.String())
	return nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	notes, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return notes[0], nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	matched := make([]*entity.Note, 0)
	for _, item := range r.store.notes.Items() {
		n := item.Object.(*entity.Note)
		ok := true
		for _, spec := range specs {
			if !noteMatches(n, spec) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, cloneNote(n))
		}
	}
	return sortAndPageNotes(matched, specs), nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	notes, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(notes)), nil
}

func (r *NoteRepository) CountByFolder(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	for _, item := range r.store.notes.Items() {
		n := item.Object.(*entity.Note)
		if n.UserId == userId && !n.IsDeleted && n.FolderId != nil {
			counts[*n.FolderId]++
		}
	}
	return counts, nil
}

func (r *NoteRepository) ClearFolderRefs(ctx context.Context, userId, folderId uuid.UUID) error {
	for key, item := range r.store.notes.Items() {
		n := item.Object.(*entity.Note)
		if n.UserId == userId && n.FolderId != nil && *n.FolderId == folderId {
			c := cloneNote(n)
			c.FolderId = nil
			r.store.notes.Set(key, c, 0)
		}
	}
	return nil
}
