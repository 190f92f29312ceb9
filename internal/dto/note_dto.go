package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title      string     `json:"title" validate:"required,min=1,max=255"`
	Content    string     `json:"content"`
	AudioURL   *string    `json:"audio_url"`
	HasAudio   bool       `json:"has_audio"`
	Tags       []string   `json:"tags"`
	IsFavorite bool       `json:"is_favorite"`
	FolderId   *uuid.UUID `json:"folder_id"`
}

// UpdateNoteRequest carries optional fields; absent fields keep their
// stored values. Folder membership is changed via the move endpoint,
// not here.
type UpdateNoteRequest struct {
	Id         uuid.UUID `json:"-"`
	Title      *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Content    *string   `json:"content"`
	AudioURL   *string   `json:"audio_url"`
	HasAudio   *bool     `json:"has_audio"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"is_favorite"`
}

type MoveNoteRequest struct {
	Id       uuid.UUID  `json:"-"`
	FolderId *uuid.UUID `json:"folder_id"`
}

type NoteResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	AudioURL   *string    `json:"audio_url"`
	HasAudio   bool       `json:"has_audio"`
	Tags       []string   `json:"tags"`
	FolderId   *uuid.UUID `json:"folder_id"`
	IsFavorite bool       `json:"is_favorite"`
	IsDeleted  bool       `json:"is_deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
