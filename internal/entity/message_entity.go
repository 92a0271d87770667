package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id          uuid.UUID
	ChannelId   uuid.UUID
	UserId      uuid.UUID
	Content     string
	Attachments []byte // Raw JSON attachment metadata, owned by the upload flow
	CreatedAt   time.Time
}
