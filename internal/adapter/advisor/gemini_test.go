package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdviceReturnsText(t *testing.T) {
	var gotPath string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Cut feed "},{"text":"costs."}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", "gemini-2.5-flash", WithBaseURL(server.URL))

	advice, err := client.GenerateAdvice(context.Background(), "You are an advisor.", "How do I save money?")
	require.NoError(t, err)

	assert.Equal(t, "Cut feed costs.", advice)
	assert.Contains(t, gotPath, "gemini-2.5-flash:generateContent")

	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "You are an advisor.", gotBody.SystemInstruction.Parts[0].Text)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "How do I save money?", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateAdviceAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", "gemini-2.5-flash", WithBaseURL(server.URL))

	_, err := client.GenerateAdvice(context.Background(), "", "prompt")
	require.Error(t, err)
}

func TestGenerateAdviceEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", "gemini-2.5-flash", WithBaseURL(server.URL))

	_, err := client.GenerateAdvice(context.Background(), "", "prompt")
	require.Error(t, err)
}
