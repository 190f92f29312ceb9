package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFolderRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Color *string `json:"color"`
}

// UpdateFolderRequest carries optional fields. A nil pointer means the
// field was absent from the payload and keeps its stored value.
type UpdateFolderRequest struct {
	Id    uuid.UUID `json:"-"`
	Name  *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Color *string   `json:"color"`
}

type FolderResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	NoteCount int       `json:"note_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
