package dto

import "github.com/google/uuid"

type SyncEmbeddingsRequest struct {
	Limit int `json:"limit"` // optional batch override, 0 = configured default
}

type SyncEmbeddingsResponse struct {
	Examined int `json:"examined"` // messages picked up this pass
	Embedded int `json:"embedded"` // embeddings actually written
}

// PublishEmbedMessage is the embed-job payload carried on the internal bus
type PublishEmbedMessage struct {
	MessageId uuid.UUID `json:"message_id"`
}

type GenerateEmbeddingRequest struct {
	MessageId uuid.UUID `json:"message_id" validate:"required"`
}

type GenerateEmbeddingResponse struct {
	MessageId uuid.UUID `json:"message_id"`
}
