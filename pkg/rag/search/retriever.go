package search

import (
	"context"
	"log"

	"chattyg-be/internal/repository/contract"
	"chattyg-be/internal/repository/unitofwork"
	"chattyg-be/pkg/aierr"

	"github.com/google/uuid"
)

// Retriever handles vector search over channel message embeddings
type Retriever struct {
	logger *log.Logger
}

// NewRetriever creates a new similarity retriever
func NewRetriever(logger *log.Logger) *Retriever {
	return &Retriever{
		logger: logger,
	}
}

// Config encapsulates search parameters
type Config struct {
	// DBThreshold is applied inside the SQL query; keeping it at 0 lets the
	// logic threshold below decide, which keeps ranking behaviour testable.
	DBThreshold    float64
	LogicThreshold float64
	TopK           int
	ChannelIds     []uuid.UUID // empty means search every channel
}

// DefaultConfig returns default search configuration
func DefaultConfig() Config {
	return Config{
		DBThreshold:    0.0,
		LogicThreshold: 0.25,
		TopK:           5,
	}
}

// Execute runs vector search and returns matches ranked by similarity,
// ties broken by message recency.
func (r *Retriever) Execute(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	queryVector []float32,
	config Config,
) ([]*contract.ScoredMessage, error) {

	scored, err := uow.EmbeddingRepository().SearchSimilarWithScore(
		ctx,
		queryVector,
		config.TopK,
		config.DBThreshold,
		config.ChannelIds,
	)
	if err != nil {
		r.logger.Printf("[ERROR] Vector search failed: %v", err)
		return nil, aierr.Wrap(aierr.KindStoreUnavailable, "vector search failed", err)
	}

	r.logger.Printf("[DEBUG] Raw search results: %d messages", len(scored))

	matches := FilterByThreshold(scored, config.LogicThreshold)

	r.logger.Printf("[DEBUG] Matches above threshold %.2f: %d messages", config.LogicThreshold, len(matches))

	return matches, nil
}

// FilterByThreshold keeps results whose similarity meets the threshold,
// preserving the incoming rank order.
func FilterByThreshold(results []*contract.ScoredMessage, threshold float64) []*contract.ScoredMessage {
	var matches []*contract.ScoredMessage
	for _, res := range results {
		if res.Similarity >= threshold {
			matches = append(matches, res)
		}
	}
	return matches
}
