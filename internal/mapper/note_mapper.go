package mapper

import (
	"encoding/json"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/model"

	"gorm.io/datatypes"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		AudioURL:   n.AudioURL,
		HasAudio:   n.HasAudio,
		Tags:       tagsFromJSON(n.Tags),
		FolderId:   n.FolderId,
		UserId:     n.UserId,
		IsFavorite: n.IsFavorite,
		IsDeleted:  n.IsDeleted,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		AudioURL:   n.AudioURL,
		HasAudio:   n.HasAudio,
		Tags:       tagsToJSON(n.Tags),
		FolderId:   n.FolderId,
		UserId:     n.UserId,
		IsFavorite: n.IsFavorite,
		IsDeleted:  n.IsDeleted,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func tagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func tagsFromJSON(raw datatypes.JSON) []string {
	tags := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &tags)
	}
	return tags
}
