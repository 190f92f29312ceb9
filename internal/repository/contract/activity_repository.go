package contract

import (
	"context"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *entity.ActivityEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
