package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// EmbeddingCache keeps recently computed question vectors so repeated
// questions skip the embedding provider round trip.
type EmbeddingCache struct {
	cache *cache.Cache
}

func NewEmbeddingCache() *EmbeddingCache {
	// Vectors expire after 1 hour, expired items are purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &EmbeddingCache{
		cache: c,
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (r *EmbeddingCache) Save(text string, vector []float32) {
	r.cache.Set(cacheKey(text), vector, cache.DefaultExpiration)
}

func (r *EmbeddingCache) Get(text string) ([]float32, bool) {
	if x, found := r.cache.Get(cacheKey(text)); found {
		return x.([]float32), true
	}
	return nil, false
}
