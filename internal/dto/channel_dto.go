package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChannelRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateChannelResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowChannelResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
