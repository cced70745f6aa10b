package kb

import (
	"context"
	"fmt"
	"strings"

	"github.com/crewforge/crewd/pkg/llm"
)

const (
	// summaryL0Tokens targets the short summary.
	summaryL0Tokens = 100

	// summaryL1Words targets the long overview.
	summaryL1Words = 400

	// summaryInputCap bounds how much document text is sent to the model.
	summaryInputCap = 24000 // chars, ≈6k tokens
)

// Embedder produces one vector per input text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Summarizer produces document summaries.
type Summarizer interface {
	// Summarize returns a summary of text within roughly maxWords words.
	Summarize(ctx context.Context, text string, maxWords int) (string, error)
}

// LLMEmbedder is an Embedder backed by a fixed completion target.
type LLMEmbedder struct {
	Client *llm.Client
	Target llm.Target
}

// Embed implements Embedder.
func (e *LLMEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.Client.Embed(ctx, e.Target, texts)
}

// LLMSummarizer is a Summarizer backed by a fixed completion target.
type LLMSummarizer struct {
	Client *llm.Client
	Target llm.Target
}

// Summarize implements Summarizer.
func (s *LLMSummarizer) Summarize(ctx context.Context, text string, maxWords int) (string, error) {
	if len(text) > summaryInputCap {
		text = text[:summaryInputCap]
	}

	resp, err := s.Client.ChatCompletion(ctx, s.Target, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: fmt.Sprintf(
				"Summarize the document in at most %d words. Respond with the summary only.", maxWords)},
			{Role: llm.RoleUser, Content: text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// stubSummary is the fallback when no summarizer is configured: the leading
// text trimmed to roughly maxWords words.
func stubSummary(text string, maxWords int) string {
	fields := strings.Fields(text)
	if len(fields) > maxWords {
		fields = fields[:maxWords]
		return strings.Join(fields, " ") + "…"
	}
	return strings.Join(fields, " ")
}
