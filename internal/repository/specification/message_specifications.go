package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByChannelID filters messages by their channel
type ByChannelID struct {
	ChannelID uuid.UUID
}

func (s ByChannelID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("channel_id = ?", s.ChannelID)
}

// ByChannelIDs scopes a query to an explicit channel list
type ByChannelIDs struct {
	ChannelIDs []uuid.UUID
}

func (s ByChannelIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("channel_id IN ?", s.ChannelIDs)
}

// ByMessageID filters embedding rows by their message
type ByMessageID struct {
	MessageID uuid.UUID
}

func (s ByMessageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_id = ?", s.MessageID)
}

// ConversationBetween matches direct-message turns in either direction
// between two participants.
type ConversationBetween struct {
	UserA uuid.UUID
	UserB uuid.UUID
}

func (s ConversationBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		s.UserA, s.UserB, s.UserB, s.UserA,
	)
}
