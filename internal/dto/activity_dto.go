package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityMessage is the payload published to the activity log topic.
type ActivityMessage struct {
	UserId       uuid.UUID `json:"user_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceId   uuid.UUID `json:"resource_id"`
	Detail       string    `json:"detail"`
}

type ActivityResponse struct {
	Id           uuid.UUID `json:"id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceId   uuid.UUID `json:"resource_id"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `json:"created_at"`
}
