package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Embedding is one-to-one with Message. The unique index on message_id is
// what makes the synchronizer's upsert idempotent under concurrent runs.
type Embedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageId      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (Embedding) TableName() string {
	return "embeddings"
}
