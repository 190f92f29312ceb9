package implementation

import (
	"context"
	"errors"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/mapper"
	"voicepad-be/internal/model"
	"voicepad-be/internal/repository/contract"
	"voicepad-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	// Conditional write keyed on the row still existing. Save would fall
	// back to an insert on zero affected rows and resurrect a note that
	// was permanently deleted after the caller's ownership read.
	m := r.mapper.ToModel(note)
	res := r.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"title":       m.Title,
			"content":     m.Content,
			"audio_url":   m.AudioURL,
			"has_audio":   m.HasAudio,
			"tags":        m.Tags,
			"folder_id":   m.FolderId,
			"is_favorite": m.IsFavorite,
			"is_deleted":  m.IsDeleted,
			"updated_at":  m.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteRepositoryImpl) CountByFolder(ctx context.Context, userId uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		FolderId uuid.UUID
		Count    int64
	}
	err := r.db.WithContext(ctx).Model(&model.Note{}).
		Select("folder_id, COUNT(*) AS count").
		Where("user_id = ? AND is_deleted = false AND folder_id IS NOT NULL", userId).
		Group("folder_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.FolderId] = row.Count
	}
	return counts, nil
}

func (r *NoteRepositoryImpl) ClearFolderRefs(ctx context.Context, userId, folderId uuid.UUID) error {
	// UpdateColumn skips the autoUpdateTime hook: unlinking is a folder
	// operation and must not reorder the user's note list.
	return r.db.WithContext(ctx).Model(&model.Note{}).
		Where("user_id = ? AND folder_id = ?", userId, folderId).
		UpdateColumn("folder_id", nil).Error
}
