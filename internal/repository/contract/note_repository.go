package contract

import (
	"context"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// Update rewrites an existing row only; returns ErrNotFound when the
	// row is gone, so a permanently deleted note cannot be recreated.
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error // Hard delete; trash is a flag flip via Update
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CountByFolder returns active note counts keyed by folder id, one
	// query for the whole folder list.
	CountByFolder(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error)

	// ClearFolderRefs nulls folder_id on every note of the user that
	// references the folder. Used inside the folder-deletion transaction.
	ClearFolderRefs(ctx context.Context, userId, folderId uuid.UUID) error
}
