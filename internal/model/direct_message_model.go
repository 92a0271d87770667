package model

import (
	"time"

	"github.com/google/uuid"
)

// DirectMessage holds conversation turns. Assistant turns carry the fixed
// assistant identity as sender_id so clients can tell them apart.
type DirectMessage struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientId uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (DirectMessage) TableName() string {
	return "direct_messages"
}
