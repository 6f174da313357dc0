package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/practicehub/backend/internal/models"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var validRequest = models.FeedbackRequest{
	Question:      "What does binary search require?",
	UserAnswer:    "Nothing",
	CorrectAnswer: "A sorted array",
	Assumption:    "Any array works",
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"}, zap.NewNop())
	require.NoError(t, err)
	return c
}

func completion(content ...string) map[string]any {
	choices := make([]map[string]any, 0, len(content))
	for i, c := range content {
		choices = append(choices, map[string]any{
			"index":         i,
			"message":       map[string]any{"role": "assistant", "content": c},
			"finish_reason": "stop",
		})
	}
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   defaultModel,
		"choices": choices,
		"usage":   map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	c, err := NewClient(Config{}, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestClient_Analyze(t *testing.T) {
	var got openai.ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completion("Binary search needs sorted input."))
	})

	resp, err := c.Analyze(context.Background(), validRequest)

	require.NoError(t, err)
	assert.Equal(t, "Binary search needs sorted input.", resp.Feedback)
	assert.Equal(t, defaultModel, got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, systemPrompt, got.Messages[0].Content)
	assert.Equal(t,
		"Question: What does binary search require?\nUser Answer: Nothing\nCorrect Answer: A sorted array\nAssumption: Any array works",
		got.Messages[1].Content)
}

func TestClient_Analyze_EmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completion())
	})

	resp, err := c.Analyze(context.Background(), validRequest)

	assert.True(t, errors.Is(err, ErrEmptyCompletion))
	assert.Nil(t, resp)
}

func TestClient_Analyze_ProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "rate_limit_error"},
		})
	})

	resp, err := c.Analyze(context.Background(), validRequest)

	var apiErr *openai.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.HTTPStatusCode)
	assert.Nil(t, resp)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*models.FeedbackRequest)
		expectedField string
	}{
		{"complete", func(*models.FeedbackRequest) {}, ""},
		{"missing question", func(r *models.FeedbackRequest) { r.Question = "" }, "question"},
		{"missing user answer", func(r *models.FeedbackRequest) { r.UserAnswer = "  " }, "userAnswer"},
		{"missing correct answer", func(r *models.FeedbackRequest) { r.CorrectAnswer = "" }, "correctAnswer"},
		{"missing assumption", func(r *models.FeedbackRequest) { r.Assumption = "" }, "assumption"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest
			tt.mutate(&req)

			err := Validate(req)

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			var validation *models.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.expectedField, validation.Field)
		})
	}
}
