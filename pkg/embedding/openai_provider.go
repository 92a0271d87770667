package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"chattyg-be/internal/constant"
	"chattyg-be/pkg/aierr"
)

// OpenAIProvider implements Provider against the OpenAI embeddings API.
type OpenAIProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

func NewOpenAIProvider(baseURL string, apiKey string, model string) Provider {
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	if model == "" {
		model = "text-embedding-3-small"
	}
	return &OpenAIProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		client:  &http.Client{},
	}
}

type openaiEmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openaiEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	reqBody := openaiEmbeddingRequest{
		Model: p.Model,
		Input: text,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/embeddings", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, aierr.Wrap(aierr.KindModelUnavailable, "embedding request failed", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, aierr.Wrap(aierr.KindModelUnavailable, "embedding response read failed", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, aierr.New(aierr.KindRateLimited, "embedding provider rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, aierr.New(aierr.KindModelUnavailable,
			fmt.Sprintf("embedding provider returned %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var openaiResp openaiEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &openaiResp); err != nil {
		return nil, aierr.Wrap(aierr.KindModelUnavailable, "embedding response decode failed", err)
	}

	if len(openaiResp.Data) == 0 {
		return nil, aierr.New(aierr.KindModelUnavailable, "embedding provider returned no data")
	}

	vector := openaiResp.Data[0].Embedding
	if len(vector) != constant.EmbeddingDimension {
		return nil, aierr.New(aierr.KindModelUnavailable,
			fmt.Sprintf("unexpected embedding dimension %d", len(vector)))
	}

	return vector, nil
}
