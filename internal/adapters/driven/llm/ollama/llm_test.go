package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *LLMService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewLLMService(LLMConfig{BaseURL: server.URL})
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc := NewLLMService(LLMConfig{})

	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.Equal(t, DefaultLLMModel, svc.model)
	assert.Equal(t, DefaultLLMModel, svc.ModelName())
}

func TestLLMService_Generate_Success(t *testing.T) {
	var gotReq generateRequest

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(generateResponse{
			Response: "The answer is 42.",
			Done:     true,
		})
	})

	result, err := svc.Generate(context.Background(), "What is the answer?", driven.GenerateOptions{
		MaxTokens:   128,
		Temperature: 0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "The answer is 42.", result)
	assert.Equal(t, DefaultLLMModel, gotReq.Model)
	assert.Equal(t, "What is the answer?", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	require.NotNil(t, gotReq.Options)
	assert.Equal(t, 128, gotReq.Options.NumPredict)
	assert.InDelta(t, 0.5, gotReq.Options.Temperature, 0.001)
}

func TestLLMService_Generate_NoOptions(t *testing.T) {
	var gotReq generateRequest

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "ok", Done: true})
	})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.NoError(t, err)
	assert.Nil(t, gotReq.Options)
}

func TestLLMService_Generate_ServerError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLLMService_Ping_Success(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		_, _ = w.Write([]byte(`{"models": []}`))
	})

	err := svc.Ping(context.Background())
	assert.NoError(t, err)
}

func TestLLMService_Ping_NotRunning(t *testing.T) {
	svc := NewLLMService(LLMConfig{BaseURL: "http://127.0.0.1:1"})

	err := svc.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
}

func TestLLMService_Close(t *testing.T) {
	svc := NewLLMService(LLMConfig{})
	assert.NoError(t, svc.Close())
}
