package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthai-service/internal/app/contracts"
	"healthai-service/internal/pkg/constvars"
	"healthai-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestGenerateContent(t *testing.T) {
	t.Run("Returns first candidate text verbatim", func(t *testing.T) {
		var captured generateContentRequest
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			json.NewEncoder(w).Encode(generateContentResponse{
				Candidates: []candidate{
					{Content: &content{Parts: []part{{Text: "  The patient is stable.  "}}}},
					{Content: &content{Parts: []part{{Text: "second candidate"}}}},
				},
			})
		})

		client := NewGeminiClient(server.URL, "gemini-2.0-flash", "test-key", server.Client())
		reply, err := client.GenerateContent(context.Background(), "summarize", nil)

		require.NoError(t, err)
		assert.Equal(t, "  The patient is stable.  ", reply)

		assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
		assert.Equal(t, 40, captured.GenerationConfig.TopK)
		assert.Equal(t, 0.95, captured.GenerationConfig.TopP)
		assert.Equal(t, 2048, captured.GenerationConfig.MaxOutputTokens)
		assert.Equal(t, 1, captured.GenerationConfig.CandidateCount)
		assert.Len(t, captured.SafetySettings, 4)
		require.Len(t, captured.Contents, 1)
		require.Len(t, captured.Contents[0].Parts, 1)
		assert.Equal(t, "summarize", captured.Contents[0].Parts[0].Text)
	})

	t.Run("Non 2xx maps upstream message", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{"code": 429, "message": "quota exceeded"},
			})
		})

		client := NewGeminiClient(server.URL, "gemini-2.0-flash", "test-key", server.Client())
		_, err := client.GenerateContent(context.Background(), "summarize", nil)

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "quota exceeded")
	})

	t.Run("Blocked prompt is surfaced", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(generateContentResponse{
				PromptFeedback: &promptFeedback{BlockReason: "SAFETY"},
			})
		})

		client := NewGeminiClient(server.URL, "gemini-2.0-flash", "test-key", server.Client())
		_, err := client.GenerateContent(context.Background(), "summarize", nil)

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Contains(t, customErr.DevMessage, "SAFETY")
	})

	t.Run("Empty candidates rejected", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(generateContentResponse{})
		})

		client := NewGeminiClient(server.URL, "gemini-2.0-flash", "test-key", server.Client())
		_, err := client.GenerateContent(context.Background(), "summarize", nil)

		require.Error(t, err)
	})

	t.Run("Malformed body rejected", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})

		client := NewGeminiClient(server.URL, "gemini-2.0-flash", "test-key", server.Client())
		_, err := client.GenerateContent(context.Background(), "summarize", nil)

		require.Error(t, err)
	})

	t.Run("Options override defaults", func(t *testing.T) {
		var captured generateContentRequest
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			json.NewEncoder(w).Encode(generateContentResponse{
				Candidates: []candidate{{Content: &content{Parts: []part{{Text: "ok"}}}}},
			})
		})

		client := NewGeminiClient(server.URL, "gemini-2.0-flash", "test-key", server.Client())
		_, err := client.GenerateContent(context.Background(), "describe", &contracts.GenerateOptions{
			Temperature:     0.2,
			MaxOutputTokens: 512,
		})

		require.NoError(t, err)
		assert.Equal(t, 0.2, captured.GenerationConfig.Temperature)
		assert.Equal(t, 512, captured.GenerationConfig.MaxOutputTokens)
	})
}
