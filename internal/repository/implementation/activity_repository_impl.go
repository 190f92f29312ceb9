package implementation

import (
	"context"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/mapper"
	"voicepad-be/internal/model"
	"voicepad-be/internal/repository/contract"
	"voicepad-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *ActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, entry *entity.ActivityEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error) {
	var models []*model.ActivityLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ActivityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ActivityLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
