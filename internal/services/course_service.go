package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for Courses table data access
type CourseRepository interface {
	// Method GetAll retrieve all courses ordered by ID.
	//
	// An empty slice (not nil) is returned when no course exists.
	GetAll(ctx context.Context) ([]models.Course, error)
	// Method Exists reports whether a course with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)
	// Method Create insert a new course and set its ID.
	//
	// If a course with the same name already exists, a *models.ConflictError is returned.
	Create(ctx context.Context, course *models.Course) error
}

type courseService struct {
	repo   CourseRepository
	logger *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(repo CourseRepository, logger *zap.Logger) *courseService {
	return &courseService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves all courses
func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

// Create validates and stores a new course
func (s *courseService) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewValidationError("name", "is required")
	}

	course := &models.Course{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("course created", zap.Int("course_id", course.ID), zap.String("name", course.Name))
	return course, nil
}
