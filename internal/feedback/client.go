// Package feedback generates short explanations of a learner's answer
// through an OpenAI-compatible chat completion API (OpenRouter by default).
package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/practicehub/backend/internal/models"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "openai/gpt-3.5-turbo"
	systemPrompt   = "You are an educational assistant that provides feedback."
	temperature    = 0.7
)

// ErrEmptyCompletion is returned when the provider answers without any choice
var ErrEmptyCompletion = errors.New("no choices in completion response")

// Config holds provider settings
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client requests feedback from the provider
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a feedback client.
// An empty API key is rejected; callers treat that as feedback being disabled.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = defaultBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger,
	}, nil
}

// Validate checks that every field of the request is present
func Validate(req models.FeedbackRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"question", req.Question},
		{"userAnswer", req.UserAnswer},
		{"correctAnswer", req.CorrectAnswer},
		{"assumption", req.Assumption},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return models.NewValidationError(f.name, "is required")
		}
	}
	return nil
}

// buildPrompt renders the user message sent to the model
func buildPrompt(req models.FeedbackRequest) string {
	return fmt.Sprintf("Question: %s\nUser Answer: %s\nCorrect Answer: %s\nAssumption: %s",
		req.Question, req.UserAnswer, req.CorrectAnswer, req.Assumption)
}

// Analyze asks the model to explain the user's answer
func (c *Client) Analyze(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			c.logger.Warn("feedback provider returned an error",
				zap.Int("status", apiErr.HTTPStatusCode),
				zap.String("message", apiErr.Message),
			)
		}
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	c.logger.Debug("feedback generated",
		zap.String("model", resp.Model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return &models.FeedbackResponse{Feedback: resp.Choices[0].Message.Content}, nil
}
