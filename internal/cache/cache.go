// Package cache keeps the question catalog in Redis between requests
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

// QuestionsKey holds the JSON-encoded question list
const QuestionsKey = "practice:catalog:questions"

// store is the subset of redis.Cmdable used by QuestionCache
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// QuestionCache caches the full question list.
// Cache failures never fail a request; they are logged and treated as misses.
type QuestionCache struct {
	client store
	ttl    time.Duration
	logger *zap.Logger
}

// NewQuestionCache creates a question cache on top of a Redis client
func NewQuestionCache(client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *QuestionCache {
	return &QuestionCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Connect creates a Redis client and verifies the connection
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// GetQuestions returns the cached question list and whether it was found
func (c *QuestionCache) GetQuestions(ctx context.Context) ([]models.Question, bool) {
	data, err := c.client.Get(ctx, QuestionsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("failed to read question cache", zap.Error(err))
		}
		return nil, false
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		c.logger.Warn("discarding malformed question cache entry", zap.Error(err))
		return nil, false
	}

	return questions, true
}

// SetQuestions stores the question list for the configured TTL
func (c *QuestionCache) SetQuestions(ctx context.Context, questions []models.Question) {
	data, err := json.Marshal(questions)
	if err != nil {
		c.logger.Warn("failed to encode question cache entry", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, QuestionsKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write question cache", zap.Error(err))
	}
}

// Invalidate drops the cached question list
func (c *QuestionCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, QuestionsKey).Err(); err != nil {
		c.logger.Warn("failed to invalidate question cache", zap.Error(err))
	}
}
