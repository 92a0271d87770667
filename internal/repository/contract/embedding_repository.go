package contract

import (
	"context"
	"time"

	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredMessage is an ephemeral similarity match: the stored message joined
// with its cosine similarity against a query vector. It is never persisted.
type ScoredMessage struct {
	MessageId  uuid.UUID
	ChannelId  uuid.UUID
	Content    string
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
	CreatedAt  time.Time
}

type EmbeddingRepository interface {
	// Upsert writes an embedding keyed by message_id; a conflicting row is
	// overwritten in place, which makes repeated runs safe.
	Upsert(ctx context.Context, embedding *entity.Embedding) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Embedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore runs the pgvector similarity query. threshold is
	// applied in SQL; channelIds (optional, nil = all channels) scopes the
	// search. Results come back ordered by similarity desc, created_at desc.
	SearchSimilarWithScore(ctx context.Context, vector []float32, limit int, threshold float64, channelIds []uuid.UUID) ([]*ScoredMessage, error)
}
