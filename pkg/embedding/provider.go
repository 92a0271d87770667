package embedding

import "context"

// Provider defines the interface for generating text embeddings.
type Provider interface {
	// Generate returns the embedding vector for the given text.
	Generate(ctx context.Context, text string) ([]float32, error)
}
