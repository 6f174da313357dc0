package services

import (
	"context"
	"errors"
	"testing"

	"github.com/practicehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleQuestions() []models.Question {
	return []models.Question{
		{ID: 1, Topic: models.TopicRef{Name: "Joins"}, Title: "Inner", Options: []string{"a", "b"}, Difficulty: models.DifficultyEasy},
		{ID: 2, Topic: models.TopicRef{ID: 1, Name: "Joins", Slug: "joins"}, Title: "Outer", Options: []string{"a", "b"}, Difficulty: models.DifficultyMedium},
		{ID: 3, Topic: models.TopicRef{Name: "Subqueries"}, Title: "Correlated", Options: []string{"a", "b"}, Difficulty: models.DifficultyHard},
		{ID: 4, Topic: models.TopicRef{Name: "   "}, Title: "Orphan", Options: []string{"a", "b"}, Difficulty: models.DifficultyHard},
	}
}

func validQuestionRequest() models.QuestionRequest {
	return models.QuestionRequest{
		Topic:       models.TopicRef{Name: "SQL Joins"},
		Title:       "Which join keeps unmatched rows?",
		Options:     []string{"INNER", "LEFT"},
		AnswerIndex: 1,
	}
}

func TestQuestionService_List(t *testing.T) {
	t.Run("enriches topics and fills cache", func(t *testing.T) {
		repo := newMockQuestionRepository(sampleQuestions()...)
		cache := &mockQuestionCache{}
		svc := NewQuestionService(repo, &mockTopicRepository{}, cache, zap.NewNop())

		questions, err := svc.List(context.Background())

		require.NoError(t, err)
		require.Len(t, questions, 4)
		assert.Equal(t, models.TopicRef{Name: "Joins", Slug: "joins"}, questions[0].Topic)
		assert.Equal(t, models.TopicRef{ID: 1, Name: "Joins", Slug: "joins"}, questions[1].Topic)
		assert.Equal(t, models.TopicRef{Name: "Subqueries", Slug: "subqueries"}, questions[2].Topic)
		assert.Equal(t, "", questions[3].Topic.Slug)
		assert.Equal(t, 1, cache.sets)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := newMockQuestionRepository(sampleQuestions()...)
		cache := &mockQuestionCache{found: true, questions: []models.Question{{ID: 99}}}
		svc := NewQuestionService(repo, &mockTopicRepository{}, cache, zap.NewNop())

		questions, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []models.Question{{ID: 99}}, questions)
		assert.Zero(t, repo.getAll)
	})

	t.Run("works without cache", func(t *testing.T) {
		repo := newMockQuestionRepository(sampleQuestions()...)
		svc := NewQuestionService(repo, &mockTopicRepository{}, nil, zap.NewNop())

		questions, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Len(t, questions, 4)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := newMockQuestionRepository()
		repo.err = errors.New("database error")
		svc := NewQuestionService(repo, &mockTopicRepository{}, nil, zap.NewNop())

		questions, err := svc.List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, questions)
	})
}

func TestQuestionService_GetByID(t *testing.T) {
	svc := NewQuestionService(newMockQuestionRepository(sampleQuestions()...), &mockTopicRepository{}, nil, zap.NewNop())

	q, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "subqueries", q.Topic.Slug)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	var validation *models.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestQuestionService_Create_Validation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*models.QuestionRequest)
		expectedField string
	}{
		{"empty topic", func(r *models.QuestionRequest) { r.Topic = models.TopicRef{Name: "  "} }, "topic"},
		{"topic without slug characters", func(r *models.QuestionRequest) { r.Topic = models.TopicRef{Name: "???"} }, "topic"},
		{"empty title", func(r *models.QuestionRequest) { r.Title = "" }, "title"},
		{"single option", func(r *models.QuestionRequest) { r.Options = []string{"only"}; r.AnswerIndex = 0 }, "options"},
		{"blank option", func(r *models.QuestionRequest) { r.Options = []string{"a", " "} }, "options"},
		{"answer index too large", func(r *models.QuestionRequest) { r.AnswerIndex = 2 }, "answerIndex"},
		{"negative answer index", func(r *models.QuestionRequest) { r.AnswerIndex = -1 }, "answerIndex"},
		{"unknown difficulty", func(r *models.QuestionRequest) { r.Difficulty = "Extreme" }, "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockQuestionRepository()
			svc := NewQuestionService(repo, &mockTopicRepository{}, nil, zap.NewNop())
			req := validQuestionRequest()
			tt.mutate(&req)

			q, err := svc.Create(context.Background(), req)

			var validation *models.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.expectedField, validation.Field)
			assert.Nil(t, q)
			assert.Empty(t, repo.questions)
		})
	}
}

func TestQuestionService_Create(t *testing.T) {
	t.Run("plain topic with default difficulty", func(t *testing.T) {
		repo := newMockQuestionRepository()
		cache := &mockQuestionCache{found: true}
		svc := NewQuestionService(repo, &mockTopicRepository{}, cache, zap.NewNop())

		q, err := svc.Create(context.Background(), validQuestionRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, q.ID)
		assert.Equal(t, models.DifficultyMedium, q.Difficulty)
		assert.Equal(t, models.TopicRef{Name: "SQL Joins", Slug: "sql-joins"}, q.Topic)
		assert.Equal(t, models.TopicRef{Name: "SQL Joins"}, repo.questions[1].Topic, "raw topic string is stored as given")
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("structured topic is stored by id", func(t *testing.T) {
		repo := newMockQuestionRepository()
		svc := NewQuestionService(repo, &mockTopicRepository{}, nil, zap.NewNop())
		req := validQuestionRequest()
		req.Topic = models.TopicRef{ID: 7, Name: "Joins", Slug: "joins"}

		q, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 7, q.Topic.ID)
	})
}

func TestQuestionService_Update(t *testing.T) {
	repo := newMockQuestionRepository(sampleQuestions()...)
	cache := &mockQuestionCache{}
	svc := NewQuestionService(repo, &mockTopicRepository{}, cache, zap.NewNop())

	req := validQuestionRequest()
	req.Difficulty = models.DifficultyHard
	q, err := svc.Update(context.Background(), 3, req)

	require.NoError(t, err)
	assert.Equal(t, 3, q.ID)
	assert.Equal(t, models.DifficultyHard, q.Difficulty)
	assert.Equal(t, "sql-joins", q.Topic.Slug)
	assert.Equal(t, 1, cache.invalidated)

	_, err = svc.Update(context.Background(), 42, req)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestQuestionService_Delete(t *testing.T) {
	repo := newMockQuestionRepository(sampleQuestions()...)
	cache := &mockQuestionCache{}
	svc := NewQuestionService(repo, &mockTopicRepository{}, cache, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.NotContains(t, repo.questions, 1)
	assert.Equal(t, 1, cache.invalidated)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 1, cache.invalidated)
}

func TestQuestionService_ListTopicGroups(t *testing.T) {
	topics := &mockTopicRepository{topics: []models.Topic{
		{ID: 1, Name: "Joins", Slug: "joins", CourseID: 1},
		{ID: 2, Name: "Subqueries", Slug: "subqueries", CourseID: 2},
	}}

	t.Run("all courses", func(t *testing.T) {
		svc := NewQuestionService(newMockQuestionRepository(sampleQuestions()...), topics, nil, zap.NewNop())

		groups, err := svc.ListTopicGroups(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "joins", groups[0].Slug)
		assert.Equal(t, []int{1, 2}, questionIDs(groups[0].Questions))
		assert.Equal(t, "subqueries", groups[1].Slug)
		assert.Equal(t, []int{3}, questionIDs(groups[1].Questions))
	})

	t.Run("course filter keeps known topics only", func(t *testing.T) {
		svc := NewQuestionService(newMockQuestionRepository(sampleQuestions()...), topics, nil, zap.NewNop())
		courseID := 2

		groups, err := svc.ListTopicGroups(context.Background(), &courseID)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "subqueries", groups[0].Slug)
		assert.Equal(t, "Subqueries", groups[0].Name)
	})

	t.Run("topic lookup error", func(t *testing.T) {
		svc := NewQuestionService(newMockQuestionRepository(sampleQuestions()...), &mockTopicRepository{err: errors.New("database error")}, nil, zap.NewNop())

		groups, err := svc.ListTopicGroups(context.Background(), nil)

		assert.Error(t, err)
		assert.Nil(t, groups)
	})
}

func questionIDs(questions []models.Question) []int {
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
