package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/practicehub/backend/internal/models"
	"github.com/practicehub/backend/internal/practice"
	"go.uber.org/zap"
)

// QuestionRepository is the interface that wraps methods for Problems table data access
type QuestionRepository interface {
	// Method GetAll retrieve all questions in stored (ID) order.
	//
	// Questions linked to a topic entity carry a structured TopicRef {ID, Name, Slug};
	// older questions carry only the raw topic string in TopicRef.Name.
	GetAll(ctx context.Context) ([]models.Question, error)
	// Method GetByID retrieve a question by its ID.
	//
	// If the question does not exist, an error wrapping models.ErrNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.Question, error)
	// Method Create insert a new question and set its ID.
	//
	// A TopicRef with an ID is stored as a link to the topic entity, otherwise TopicRef.Name is stored as is.
	Create(ctx context.Context, q *models.Question) error
	// Method Update replace all fields of an existing question.
	Update(ctx context.Context, q *models.Question) error
	// Method Delete remove a question by its ID.
	//
	// If the question does not exist, an error wrapping models.ErrNotFound is returned.
	Delete(ctx context.Context, id int) error
}

// QuestionCache is the interface of the optional question catalog cache.
// Implementations must never fail a request; errors are reported as misses.
type QuestionCache interface {
	GetQuestions(ctx context.Context) ([]models.Question, bool)
	SetQuestions(ctx context.Context, questions []models.Question)
	Invalidate(ctx context.Context)
}

type questionService struct {
	repo   QuestionRepository
	topics TopicRepository
	cache  QuestionCache
	logger *zap.Logger
}

// NewQuestionService creates a new question service.
// "cache" may be nil, in which case every read goes to the repository.
func NewQuestionService(repo QuestionRepository, topics TopicRepository, cache QuestionCache, logger *zap.Logger) *questionService {
	return &questionService{
		repo:   repo,
		topics: topics,
		cache:  cache,
		logger: logger,
	}
}

// enrichTopic rewrites a topic reference into its resolved {id?, name, slug} form
func enrichTopic(ref models.TopicRef) models.TopicRef {
	res := practice.Resolve(ref)
	return models.TopicRef{ID: ref.ID, Name: res.Name, Slug: res.Slug}
}

// List retrieves all questions with resolved topic references
func (s *questionService) List(ctx context.Context) ([]models.Question, error) {
	if s.cache != nil {
		if questions, ok := s.cache.GetQuestions(ctx); ok {
			return questions, nil
		}
	}

	questions, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get questions", zap.Error(err))
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	for i := range questions {
		questions[i].Topic = enrichTopic(questions[i].Topic)
	}

	if s.cache != nil {
		s.cache.SetQuestions(ctx, questions)
	}
	return questions, nil
}

// GetByID retrieves one question with a resolved topic reference
func (s *questionService) GetByID(ctx context.Context, id int) (*models.Question, error) {
	if id <= 0 {
		return nil, models.NewValidationError("id", "must be a positive integer")
	}

	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	q.Topic = enrichTopic(q.Topic)
	return q, nil
}

// Create validates and stores a new question
func (s *questionService) Create(ctx context.Context, req models.QuestionRequest) (*models.Question, error) {
	q, err := buildQuestion(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("question created", zap.Int("question_id", q.ID))
	return s.GetByID(ctx, q.ID)
}

// Update validates and replaces an existing question
func (s *questionService) Update(ctx context.Context, id int, req models.QuestionRequest) (*models.Question, error) {
	if id <= 0 {
		return nil, models.NewValidationError("id", "must be a positive integer")
	}
	q, err := buildQuestion(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	q.ID = id
	if err := s.repo.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("question updated", zap.Int("question_id", id))
	return s.GetByID(ctx, id)
}

// Delete removes a question
func (s *questionService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return models.NewValidationError("id", "must be a positive integer")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("question deleted", zap.Int("question_id", id))
	return nil
}

// ListTopicGroups groups all questions by canonical topic slug.
//
// With a course filter, topics of that course name the groups and only those groups are returned.
func (s *questionService) ListTopicGroups(ctx context.Context, courseID *int) ([]models.TopicGroup, error) {
	if courseID != nil && *courseID <= 0 {
		return nil, models.NewValidationError("courseId", "must be a positive integer")
	}

	questions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	topics, err := s.topics.GetAll(ctx, courseID)
	if err != nil {
		s.logger.Error("failed to get topics", zap.Error(err))
		return nil, fmt.Errorf("failed to get topics: %w", err)
	}

	groups := practice.Group(questions, topics)
	if courseID != nil {
		groups = practice.FilterGroups(groups, topics)
	}
	return groups, nil
}

func (s *questionService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// buildQuestion validates a request and converts it into a storable question
func buildQuestion(req models.QuestionRequest) (*models.Question, error) {
	topic := req.Topic
	if practice.Resolve(topic).Slug == "" && topic.ID <= 0 {
		return nil, models.NewValidationError("topic", "is required")
	}
	if topic.ID <= 0 {
		name := strings.TrimSpace(topic.Name)
		if name == "" {
			name = topic.Slug
		}
		topic = models.TopicRef{Name: name}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, models.NewValidationError("title", "is required")
	}

	if len(req.Options) < 2 {
		return nil, models.NewValidationError("options", "at least two options are required")
	}
	for i, opt := range req.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, models.NewValidationError("options", fmt.Sprintf("option %d is empty", i))
		}
	}
	if req.AnswerIndex < 0 || req.AnswerIndex >= len(req.Options) {
		return nil, models.NewValidationError("answerIndex", fmt.Sprintf("must be between 0 and %d", len(req.Options)-1))
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !difficulty.IsValid() {
		return nil, models.NewValidationError("difficulty", "must be one of Easy, Medium, Hard")
	}

	options := make([]string, len(req.Options))
	copy(options, req.Options)

	return &models.Question{
		Topic:       topic,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Options:     options,
		AnswerIndex: req.AnswerIndex,
		Difficulty:  difficulty,
	}, nil
}
