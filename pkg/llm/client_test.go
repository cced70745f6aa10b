package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello there"}}]}`))
	}))
	defer srv.Close()

	c := NewClient()
	resp, err := c.ChatCompletion(context.Background(), Target{
		Endpoint: srv.URL + "/v1",
		Model:    "test-model",
		APIKey:   "sk-test",
	}, ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "be brief"},
			{Role: RoleUser, Content: "hi"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", resp.Content)
	assert.Empty(t, resp.ToolCalls)
}

func TestChatCompletionReturnsToolCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"","tool_calls":[
			{"id":"call_1","type":"function","function":{"name":"search_kb","arguments":"{\"query\":\"pricing\"}"}}
		]}}]}`))
	}))
	defer srv.Close()

	c := NewClient()
	resp, err := c.ChatCompletion(context.Background(), Target{Endpoint: srv.URL, Model: "m"}, ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "find pricing"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "search_kb", resp.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"query":"pricing"}`, resp.ToolCalls[0].Function.Arguments)
}

func TestChatCompletionClassifiesFailures(t *testing.T) {
	cases := []struct {
		status    int
		retryable bool
	}{
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusTooManyRequests, true},
		{http.StatusUnauthorized, false},
		{http.StatusBadRequest, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := NewClient()
			_, err := c.ChatCompletion(context.Background(), Target{Endpoint: srv.URL, Model: "m"}, ChatRequest{})
			require.Error(t, err)
			assert.Equal(t, tc.retryable, IsRetryable(err))
		})
	}
}

func TestChatCompletionNetworkErrorIsRetryable(t *testing.T) {
	c := NewClient()
	_, err := c.ChatCompletion(context.Background(), Target{
		Endpoint: "http://127.0.0.1:1", // nothing listens here
		Model:    "m",
	}, ChatRequest{})
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}

func TestChatCompletionStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, delta := range []string{"Hel", "lo ", "world"} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", delta)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	var sb strings.Builder
	var done atomic.Bool
	c := NewClient()
	err := c.ChatCompletionStream(context.Background(), Target{Endpoint: srv.URL, Model: "m"}, ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, func(chunk StreamChunk) {
		if chunk.Done {
			done.Store(true)
			return
		}
		sb.WriteString(chunk.Delta)
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", sb.String())
	assert.True(t, done.Load())
}

func TestEmbedBatchesAndPreservesOrder(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := embeddingResponse{}
		for i, input := range req.Input {
			resp.Data = append(resp.Data, struct {
				Index     int       `json:"index"`
				Embedding []float32 `json:"embedding"`
			}{Index: i, Embedding: []float32{float32(len(input))}})
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	inputs := make([]string, 70) // 3 batches of ≤32
	for i := range inputs {
		inputs[i] = strings.Repeat("x", i+1)
	}

	c := NewClient()
	vectors, err := c.Embed(context.Background(), Target{Endpoint: srv.URL, Model: "embed-1"}, inputs)
	require.NoError(t, err)
	require.Len(t, vectors, 70)
	assert.Equal(t, int32(3), calls.Load())
	for i, v := range vectors {
		require.Len(t, v, 1)
		assert.Equal(t, float32(i+1), v[0], "input %d out of order", i)
	}
}
