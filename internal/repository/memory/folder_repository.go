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

type FolderRepository struct {
	store *Store
}

func cloneFolder(f *entity.Folder) *entity.Folder {
	if f == nil {
		return nil
	}
	c := *f
	if f.Color != nil {
		v := *f.Color
		c.Color = &v
	}
	return &c
}

func folderMatches(f *entity.Folder, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return f.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if f.Id == id {
				return true
			}
		}
		return false
	case specification.OwnedBy:
		return f.UserId == s.UserID
	default:
		return true
	}
}

func (r *FolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	now := time.Now()
	if folder.Id == uuid.Nil {
		folder.Id = uuid.New()
	}
	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = now
	}
	if folder.UpdatedAt.IsZero() {
		folder.UpdatedAt = now
	}
	r.store.folders.Set(folder.Id.String(), cloneFolder(folder), 0)
	return nil
}

func (r *FolderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	if err := r.store.folders.Replace(folder.Id.String(), cloneFolder(folder), 0); err != nil {
		return contract.ErrNotFound
	}
	return nil
}

func (r *FolderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.folders.Delete(id.String())
	return nil
}

func (r *FolderRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	folders, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, nil
	}
	return folders[0], nil
}

func (r *FolderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	matched := make([]*entity.Folder, 0)
	for _, item := range r.store.folders.Items() {
		f := item.Object.(*entity.Folder)
		ok := true
		for _, spec := range specs {
			if !folderMatches(f, spec) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, cloneFolder(f))
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

func (r *FolderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	folders, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(folders)), nil
}
