package indexer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	genai "google.golang.org/genai"
)

// ErrEmptyText is returned for embedding requests with no content.
var ErrEmptyText = errors.New("indexer: text cannot be empty")

// Embedder is the black-box embed(text) -> vector collaborator.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
	Close() error
}

// GeminiEmbedder computes embeddings through the official genai client.
type GeminiEmbedder struct {
	cli   *genai.Client
	model string
}

// NewGeminiEmbedder reads the API key from the environment, as the genai
// client does by default.
func NewGeminiEmbedder(ctx context.Context, model string) (*GeminiEmbedder, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "gemini-embedding-001"
	}
	return &GeminiEmbedder{cli: cli, model: model}, nil
}

func (g *GeminiEmbedder) Model() string { return g.model }
func (g *GeminiEmbedder) Close() error  { return nil }

func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		resp, err := g.cli.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
		if err != nil {
			lastErr = err
		} else if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
			lastErr = fmt.Errorf("indexer: empty embedding from model %s", g.model)
		} else {
			return resp.Embeddings[0].Values, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("embed attempt %d failed: %v", attempt+1, lastErr)
		time.Sleep(time.Duration(300*(1<<attempt)) * time.Millisecond)
	}
	return nil, lastErr
}
