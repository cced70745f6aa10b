package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 120 * time.Second
	embedBatchSize = 32
)

// Client talks to any OpenAI-compatible completion endpoint.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a completion client with the default timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP creates a client with a caller-supplied http.Client
// (used by tests).
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Tools       []ToolDef `json:"tools,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   string     `json:"content"`
			ToolCalls []ToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ChatCompletion performs one completion call against target. Transport
// failures, 5xx, and 429 responses come back wrapped as retryable; the
// caller owns retry policy.
func (c *Client) ChatCompletion(ctx context.Context, target Target, req ChatRequest) (*ChatResponse, error) {
	body := chatCompletionRequest{
		Model:       target.Model,
		Messages:    req.Messages,
		Tools:       req.Tools,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	respBody, err := c.post(ctx, target, "/chat/completions", body)
	if err != nil {
		return nil, err
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("provider returned no choices")
	}

	msg := parsed.Choices[0].Message
	return &ChatResponse{
		Content:   msg.Content,
		ToolCalls: msg.ToolCalls,
	}, nil
}

type streamChunkPayload struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

// ChatCompletionStream performs a streamed completion, invoking onChunk for
// every content delta. A final Done chunk is always delivered on success.
func (c *Client) ChatCompletionStream(ctx context.Context, target Target, req ChatRequest, onChunk func(StreamChunk)) error {
	body := chatCompletionRequest{
		Model:       target.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      true,
	}

	httpReq, err := c.newRequest(ctx, target, "/chat/completions", body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Retryable(fmt.Errorf("provider request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}

		var payload streamChunkPayload
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			continue // tolerate keepalives and unknown frames
		}
		for _, choice := range payload.Choices {
			if choice.Delta.Content != "" {
				onChunk(StreamChunk{Delta: choice.Delta.Content})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Retryable(fmt.Errorf("stream read failed: %w", err))
	}

	onChunk(StreamChunk{Done: true})
	return nil
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

// Embed returns one vector per input, batching requests and running batches
// concurrently. Output order matches input order.
func (c *Client) Embed(ctx context.Context, target Target, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for start := 0; start < len(inputs); start += embedBatchSize {
		end := min(start+embedBatchSize, len(inputs))
		g.Go(func() error {
			respBody, err := c.post(gctx, target, "/embeddings", embeddingRequest{
				Model: target.Model,
				Input: inputs[start:end],
			})
			if err != nil {
				return err
			}

			var parsed embeddingResponse
			if err := json.Unmarshal(respBody, &parsed); err != nil {
				return fmt.Errorf("failed to decode embedding response: %w", err)
			}
			if parsed.Error != nil {
				return fmt.Errorf("provider error: %s", parsed.Error.Message)
			}
			if len(parsed.Data) != end-start {
				return fmt.Errorf("expected %d embeddings, got %d", end-start, len(parsed.Data))
			}
			for _, d := range parsed.Data {
				vectors[start+d.Index] = d.Embedding
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (c *Client) newRequest(ctx context.Context, target Target, path string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(target.Endpoint, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if target.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+target.APIKey)
	}
	return req, nil
}

func (c *Client) post(ctx context.Context, target Target, path string, body any) ([]byte, error) {
	req, err := c.newRequest(ctx, target, path, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, Retryable(fmt.Errorf("provider request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, Retryable(fmt.Errorf("failed to read provider response: %w", err))
	}
	if err := checkStatus(resp, respBody); err != nil {
		return nil, err
	}
	return respBody, nil
}

// checkStatus classifies non-2xx responses: 429 and 5xx are retryable,
// everything else is terminal.
func checkStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := strings.TrimSpace(string(body))
	if len(detail) > 512 {
		detail = detail[:512]
	}
	err := fmt.Errorf("provider returned %d: %s", resp.StatusCode, detail)

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return Retryable(err)
	}
	return err
}
