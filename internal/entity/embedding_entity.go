package entity

import (
	"time"

	"github.com/google/uuid"
)

type Embedding struct {
	Id             uuid.UUID
	MessageId      uuid.UUID
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
