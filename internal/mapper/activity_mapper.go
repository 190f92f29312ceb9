package mapper

import (
	"voicepad-be/internal/entity"
	"voicepad-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityLog) *entity.ActivityEntry {
	if a == nil {
		return nil
	}

	return &entity.ActivityEntry{
		Id:           a.Id,
		UserId:       a.UserId,
		Action:       a.Action,
		ResourceType: a.ResourceType,
		ResourceId:   a.ResourceId,
		Detail:       a.Detail,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityEntry) *model.ActivityLog {
	if a == nil {
		return nil
	}

	return &model.ActivityLog{
		Id:           a.Id,
		UserId:       a.UserId,
		Action:       a.Action,
		ResourceType: a.ResourceType,
		ResourceId:   a.ResourceId,
		Detail:       a.Detail,
		CreatedAt:    a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(entries []*model.ActivityLog) []*entity.ActivityEntry {
	entities := make([]*entity.ActivityEntry, len(entries))
	for i, a := range entries {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
