package dto

import (
	"time"

	"github.com/google/uuid"
)

type AskAssistantRequest struct {
	Question   string      `json:"question" validate:"required"`
	ChannelIds []uuid.UUID `json:"channel_ids"` // optional retrieval scope, empty = all channels
}

type AskAssistantResponse struct {
	Answer string `json:"answer"`
}

// ConversationTurn is one DM turn between the user and the assistant
type ConversationTurn struct {
	Id          uuid.UUID `json:"id"`
	SenderId    uuid.UUID `json:"sender_id"`
	RecipientId uuid.UUID `json:"recipient_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

type ShowConversationResponse struct {
	Turns []ConversationTurn `json:"turns"`
}
