package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/practicehub/backend/internal/models"
	"github.com/practicehub/backend/internal/practice"
	"go.uber.org/zap"
)

// DashboardStatRepository is the interface that wraps methods for per-user topic statistics
type DashboardStatRepository interface {
	// Method GetByUserID retrieve every stat of the user, each with its solved set.
	//
	// A user without stats gets an empty slice, not an error.
	GetByUserID(ctx context.Context, userID int) ([]models.DashboardStat, error)
	// Method RecordAnswer atomically increment "attempted" (and "correct" when "isCorrect")
	// for the (userID, topic) pair, creating the stat when absent.
	//
	// A correct answer with a positive "questionID" adds that question to the solved set.
	// Concurrent calls for the same pair must never lose an increment.
	RecordAnswer(ctx context.Context, userID int, topic string, questionID int, isCorrect bool) (*models.DashboardStat, error)
	// Method ResetTopic zero "attempted" and "correct" for the (userID, topic) pair, creating the stat when absent.
	//
	// The solved set is left untouched.
	ResetTopic(ctx context.Context, userID int, topic string) (*models.DashboardStat, error)
	// Method ResetAll zero "attempted" and "correct" for every topic of the user and return how many stats changed.
	ResetAll(ctx context.Context, userID int) (int, error)
}

// QuestionCatalog is the read side of the question catalog used by the dashboard
type QuestionCatalog interface {
	ListTopicGroups(ctx context.Context, courseID *int) ([]models.TopicGroup, error)
	GetByID(ctx context.Context, id int) (*models.Question, error)
}

type dashboardService struct {
	repo    DashboardStatRepository
	catalog QuestionCatalog
	logger  *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo DashboardStatRepository, catalog QuestionCatalog, logger *zap.Logger) *dashboardService {
	return &dashboardService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

func validateUserID(userID int) error {
	if userID <= 0 {
		return models.NewValidationError("userId", "must be a positive integer")
	}
	return nil
}

// GetStats returns the user's counters keyed by topic slug
func (s *dashboardService) GetStats(ctx context.Context, userID int) (map[string]models.TopicStats, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	stats, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get dashboard stats", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return practice.StatsBySlug(stats), nil
}

// GetSummary merges the user's stats onto the topic groups of the catalog
func (s *dashboardService) GetSummary(ctx context.Context, userID int, courseID *int) ([]models.TopicProgress, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	groups, err := s.catalog.ListTopicGroups(ctx, courseID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get dashboard stats", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	progress, err := practice.BuildProgress(groups, stats)
	if err != nil {
		s.logger.Error("stored dashboard stat is inconsistent", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return progress, nil
}

// SubmitAnswer records one answer submission.
//
// With SelectedIndex and QuestionID the answer is graded against the stored question and
// the topic is taken from it. Otherwise Topic and IsCorrect are required.
func (s *dashboardService) SubmitAnswer(ctx context.Context, userID int, sub models.AnswerSubmission) (*models.DashboardStat, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if sub.QuestionID < 0 {
		return nil, models.NewValidationError("questionId", "must not be negative")
	}

	var (
		slug      string
		isCorrect bool
	)

	if sub.SelectedIndex != nil {
		if sub.QuestionID == 0 {
			return nil, models.NewValidationError("questionId", "is required when selectedIndex is set")
		}
		q, err := s.catalog.GetByID(ctx, sub.QuestionID)
		if err != nil {
			return nil, err
		}
		if *sub.SelectedIndex < 0 || *sub.SelectedIndex >= len(q.Options) {
			return nil, models.NewValidationError("selectedIndex", fmt.Sprintf("must be between 0 and %d", len(q.Options)-1))
		}
		slug = practice.Resolve(q.Topic).Slug
		isCorrect = *sub.SelectedIndex == q.AnswerIndex
	} else {
		if sub.IsCorrect == nil {
			return nil, models.NewValidationError("isCorrect", "is required")
		}
		slug = practice.ResolveName(sub.Topic).Slug
		isCorrect = *sub.IsCorrect
	}

	if slug == "" {
		return nil, models.NewValidationError("topic", "is required")
	}

	stat, err := s.repo.RecordAnswer(ctx, userID, slug, sub.QuestionID, isCorrect)
	if err != nil {
		s.logger.Error("failed to record answer",
			zap.Int("user_id", userID),
			zap.String("topic", slug),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}
	return stat, nil
}

// ResetTopic zeroes the user's counters for one topic; the solved set is kept
func (s *dashboardService) ResetTopic(ctx context.Context, userID int, topic string) (*models.DashboardStat, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	slug := practice.ResolveName(strings.TrimSpace(topic)).Slug
	if slug == "" {
		return nil, models.NewValidationError("topic", "is required")
	}

	stat, err := s.repo.ResetTopic(ctx, userID, slug)
	if err != nil {
		s.logger.Error("failed to reset dashboard stat", zap.Int("user_id", userID), zap.String("topic", slug), zap.Error(err))
		return nil, fmt.Errorf("failed to reset dashboard stat: %w", err)
	}

	s.logger.Info("dashboard topic reset", zap.Int("user_id", userID), zap.String("topic", slug))
	return stat, nil
}

// ResetAll zeroes the user's counters for every topic and returns how many stats changed
func (s *dashboardService) ResetAll(ctx context.Context, userID int) (int, error) {
	if err := validateUserID(userID); err != nil {
		return 0, err
	}

	count, err := s.repo.ResetAll(ctx, userID)
	if err != nil {
		s.logger.Error("failed to reset dashboard stats", zap.Int("user_id", userID), zap.Error(err))
		return 0, fmt.Errorf("failed to reset dashboard stats: %w", err)
	}

	s.logger.Info("dashboard reset", zap.Int("user_id", userID), zap.Int("topics", count))
	return count, nil
}
