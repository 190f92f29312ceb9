package contract

import (
	"context"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	// Update rewrites an existing row only; returns ErrNotFound when the
	// row is gone.
	Update(ctx context.Context, folder *entity.Folder) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
