package cleaner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"google.golang.org/genai"
)

// generateFunc sends one prompt with one API key and returns the response text.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type geminiCleaner struct {
	apiKeys  []string
	model    string
	prompt   string
	logger   logger.Logger
	generate generateFunc

	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Cleaner backed by Gemini that rotates through the
// supplied API keys when one is rate limited.
func NewGemini(apiKeys []string, model, prompt string, log logger.Logger) (Cleaner, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("gemini cleaner needs at least one API key")
	}
	return &geminiCleaner{
		apiKeys:  apiKeys,
		model:    model,
		prompt:   prompt,
		logger:   log,
		generate: callGemini,
	}, nil
}

func (g *geminiCleaner) Name() string { return "gemini:" + g.model }

// Clean rotates API keys on 429 / quota errors and fails on anything else.
func (g *geminiCleaner) Clean(ctx context.Context, chunk string) (string, error) {
	prompt := buildPrompt(g.prompt, chunk)

	var lastErr error
	for range g.apiKeys {
		idx, key := g.key()

		text, err := g.generate(ctx, key, g.model, prompt)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiCleaner) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateKey advances past from unless a concurrent call already did.
func (g *geminiCleaner) rotateKey(from int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == from {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func callGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
