package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is the domain representation of a note. IsDeleted marks the
// reversible trash state; a trashed note stays listable and restorable
// until it is removed permanently.
type Note struct {
	Id         uuid.UUID
	Title      string
	Content    string
	AudioURL   *string
	HasAudio   bool
	Tags       []string
	FolderId   *uuid.UUID
	UserId     uuid.UUID
	IsFavorite bool
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
