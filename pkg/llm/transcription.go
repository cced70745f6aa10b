package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const transcriptionTimeout = 60 * time.Second

// TranscriptionClient talks to an OpenAI-compatible /audio/transcriptions
// endpoint. Used by meetings to turn voice interjections into text.
type TranscriptionClient struct {
	httpClient *http.Client
}

// NewTranscriptionClient creates a transcription client with the default
// timeout.
func NewTranscriptionClient() *TranscriptionClient {
	return &TranscriptionClient{
		httpClient: &http.Client{Timeout: transcriptionTimeout},
	}
}

// NewTranscriptionClientWithHTTP creates a client with a caller-supplied
// http.Client (used by tests).
func NewTranscriptionClientWithHTTP(hc *http.Client) *TranscriptionClient {
	return &TranscriptionClient{httpClient: hc}
}

type transcriptionResponse struct {
	Text  string    `json:"text"`
	Error *apiError `json:"error,omitempty"`
}

// Transcribe sends the audio to the provider and returns the recognized
// text. The returned text may be empty when the audio carried no speech.
func (c *TranscriptionClient) Transcribe(ctx context.Context, target Target, filename string, audio io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}
	if err := writer.WriteField("model", target.Model); err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}

	url := strings.TrimRight(target.Endpoint, "/") + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if target.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+target.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", Retryable(fmt.Errorf("transcription request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", Retryable(fmt.Errorf("failed to read transcription response: %w", err))
	}
	if err := checkStatus(resp, respBody); err != nil {
		return "", err
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("provider error: %s", parsed.Error.Message)
	}
	return strings.TrimSpace(parsed.Text), nil
}
