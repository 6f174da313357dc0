package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/practicehub/backend/internal/models"
	"github.com/practicehub/backend/internal/practice"
	"go.uber.org/zap"
)

// TopicRepository is the interface that wraps methods for Topics table data access
type TopicRepository interface {
	// Method GetAll retrieve topics ordered by ID.
	//
	// When "courseID" is not nil only topics of that course are returned.
	GetAll(ctx context.Context, courseID *int) ([]models.Topic, error)
	// Method ExistsBySlugAndCourse reports whether the (slug, course) pair is already taken.
	ExistsBySlugAndCourse(ctx context.Context, slug string, courseID int) (bool, error)
	// Method Create insert a new topic and set its ID.
	//
	// A duplicate (slug, course) pair results in a *models.ConflictError.
	Create(ctx context.Context, topic *models.Topic) error
}

type topicService struct {
	repo    TopicRepository
	courses CourseRepository
	logger  *zap.Logger
}

// NewTopicService creates a new topic service
func NewTopicService(repo TopicRepository, courses CourseRepository, logger *zap.Logger) *topicService {
	return &topicService{
		repo:    repo,
		courses: courses,
		logger:  logger,
	}
}

// List retrieves topics, optionally restricted to one course
func (s *topicService) List(ctx context.Context, courseID *int) ([]models.Topic, error) {
	if courseID != nil && *courseID <= 0 {
		return nil, models.NewValidationError("courseId", "must be a positive integer")
	}

	topics, err := s.repo.GetAll(ctx, courseID)
	if err != nil {
		s.logger.Error("failed to get topics", zap.Error(err))
		return nil, fmt.Errorf("failed to get topics: %w", err)
	}
	return topics, nil
}

// Create derives the topic slug from its name and stores the topic.
//
// The slug is computed once here and never recomputed afterwards.
func (s *topicService) Create(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewValidationError("name", "is required")
	}
	slug := practice.Canonicalize(name)
	if slug == "" {
		return nil, models.NewValidationError("name", "must contain at least one letter or digit")
	}
	if req.CourseID <= 0 {
		return nil, models.NewValidationError("courseId", "is required")
	}

	exists, err := s.courses.Exists(ctx, req.CourseID)
	if err != nil {
		s.logger.Error("failed to check course", zap.Int("course_id", req.CourseID), zap.Error(err))
		return nil, fmt.Errorf("failed to check course: %w", err)
	}
	if !exists {
		return nil, models.NewValidationError("courseId", "course not found")
	}

	taken, err := s.repo.ExistsBySlugAndCourse(ctx, slug, req.CourseID)
	if err != nil {
		s.logger.Error("failed to check topic", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("failed to check topic: %w", err)
	}
	if taken {
		return nil, models.NewConflictError("topic", "topic already exists in this course")
	}

	topic := &models.Topic{Name: name, Slug: slug, CourseID: req.CourseID}
	if err := s.repo.Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	s.logger.Info("topic created",
		zap.Int("topic_id", topic.ID),
		zap.String("slug", topic.Slug),
		zap.Int("course_id", topic.CourseID),
	)
	return topic, nil
}
