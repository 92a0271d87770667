package entity

import (
	"time"

	"github.com/google/uuid"
)

type DirectMessage struct {
	Id          uuid.UUID
	SenderId    uuid.UUID
	RecipientId uuid.UUID
	Content     string
	CreatedAt   time.Time
}
