package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Action       string    `gorm:"type:varchar(50);not null"`
	ResourceType string    `gorm:"type:varchar(20);not null"`
	ResourceId   uuid.UUID `gorm:"type:uuid"`
	Detail       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
