package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Note does not use gorm.DeletedAt: the trash flag is an explicit,
// reversible column so trashed rows stay queryable, and permanent
// deletion is a real row delete.
type Note struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string         `gorm:"type:varchar(255);not null"`
	Content    string         `gorm:"type:text"`
	AudioURL   *string        `gorm:"type:text"`
	HasAudio   bool           `gorm:"not null;default:false"`
	Tags       datatypes.JSON `gorm:"type:jsonb"`
	FolderId   *uuid.UUID     `gorm:"type:uuid;index"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	IsFavorite bool           `gorm:"not null;default:false"`
	IsDeleted  bool           `gorm:"not null;default:false;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
