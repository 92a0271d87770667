package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Message rows are append-only as far as the assistant pipeline is concerned:
// vectors are derived from content once and never re-derived on edit.
type Message struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChannelId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Content     string         `gorm:"type:text;not null"`
	Attachments datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
