package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	ChannelId   uuid.UUID       `json:"channel_id" validate:"required"`
	Content     string          `json:"content" validate:"required"`
	Attachments json.RawMessage `json:"attachments"`
}

type CreateMessageResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowMessageResponse struct {
	Id          uuid.UUID       `json:"id"`
	ChannelId   uuid.UUID       `json:"channel_id"`
	UserId      uuid.UUID       `json:"user_id"`
	Content     string          `json:"content"`
	Attachments json.RawMessage `json:"attachments,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
