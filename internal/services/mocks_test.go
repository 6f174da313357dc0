package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/practicehub/backend/internal/models"
)

type mockCourseRepository struct {
	courses   []models.Course
	exists    bool
	createdID int
	created   *models.Course
	err       error
	existsErr error
}

func (m *mockCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCourseRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.exists, nil
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.err != nil {
		return m.err
	}
	course.ID = m.createdID
	m.created = course
	return nil
}

type mockTopicRepository struct {
	topics    []models.Topic
	taken     bool
	createdID int
	created   *models.Topic
	courseArg *int
	err       error
	takenErr  error
}

func (m *mockTopicRepository) GetAll(ctx context.Context, courseID *int) ([]models.Topic, error) {
	m.courseArg = courseID
	if m.err != nil {
		return nil, m.err
	}
	if courseID == nil {
		return m.topics, nil
	}
	filtered := make([]models.Topic, 0)
	for _, t := range m.topics {
		if t.CourseID == *courseID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (m *mockTopicRepository) ExistsBySlugAndCourse(ctx context.Context, slug string, courseID int) (bool, error) {
	if m.takenErr != nil {
		return false, m.takenErr
	}
	return m.taken, nil
}

func (m *mockTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	if m.err != nil {
		return m.err
	}
	topic.ID = m.createdID
	m.created = topic
	return nil
}

// mockQuestionRepository keeps questions in memory, keyed by ID
type mockQuestionRepository struct {
	questions map[int]models.Question
	nextID    int
	getAll    int
	err       error
}

func newMockQuestionRepository(questions ...models.Question) *mockQuestionRepository {
	m := &mockQuestionRepository{questions: map[int]models.Question{}, nextID: 1}
	for _, q := range questions {
		m.questions[q.ID] = q
		if q.ID >= m.nextID {
			m.nextID = q.ID + 1
		}
	}
	return m
}

func (m *mockQuestionRepository) GetAll(ctx context.Context) ([]models.Question, error) {
	m.getAll++
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]int, 0, len(m.questions))
	for id := range m.questions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.questions[id])
	}
	return out, nil
}

func (m *mockQuestionRepository) GetByID(ctx context.Context, id int) (*models.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	q, ok := m.questions[id]
	if !ok {
		return nil, fmt.Errorf("question %d: %w", id, models.ErrNotFound)
	}
	return &q, nil
}

func (m *mockQuestionRepository) Create(ctx context.Context, q *models.Question) error {
	if m.err != nil {
		return m.err
	}
	q.ID = m.nextID
	m.nextID++
	stored := *q
	if stored.Topic.ID > 0 {
		stored.Topic = models.TopicRef{ID: q.Topic.ID, Name: "Linked", Slug: "linked"}
	}
	m.questions[q.ID] = stored
	return nil
}

func (m *mockQuestionRepository) Update(ctx context.Context, q *models.Question) error {
	if m.err != nil {
		return m.err
	}
	m.questions[q.ID] = *q
	return nil
}

func (m *mockQuestionRepository) Delete(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.questions[id]; !ok {
		return fmt.Errorf("question %d: %w", id, models.ErrNotFound)
	}
	delete(m.questions, id)
	return nil
}

type mockQuestionCache struct {
	questions   []models.Question
	found       bool
	sets        int
	invalidated int
}

func (m *mockQuestionCache) GetQuestions(ctx context.Context) ([]models.Question, bool) {
	return m.questions, m.found
}

func (m *mockQuestionCache) SetQuestions(ctx context.Context, questions []models.Question) {
	m.questions = questions
	m.found = true
	m.sets++
}

func (m *mockQuestionCache) Invalidate(ctx context.Context) {
	m.questions = nil
	m.found = false
	m.invalidated++
}

type statKey struct {
	userID int
	topic  string
}

// memoryStatStore is an in-memory DashboardStatRepository.
// Each operation holds the lock for its whole read-modify-write, like the SQL upsert does.
type memoryStatStore struct {
	mu    sync.Mutex
	stats map[statKey]*models.DashboardStat
	err   error
}

func newMemoryStatStore() *memoryStatStore {
	return &memoryStatStore{stats: map[statKey]*models.DashboardStat{}}
}

func copyStat(s *models.DashboardStat) *models.DashboardStat {
	c := *s
	c.Solved = append([]int{}, s.Solved...)
	return &c
}

func (m *memoryStatStore) GetByUserID(ctx context.Context, userID int) ([]models.DashboardStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.DashboardStat, 0)
	for k, s := range m.stats {
		if k.userID == userID {
			out = append(out, *copyStat(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out, nil
}

func (m *memoryStatStore) load(userID int, topic string) *models.DashboardStat {
	k := statKey{userID, topic}
	s, ok := m.stats[k]
	if !ok {
		s = &models.DashboardStat{UserID: userID, Topic: topic, Solved: []int{}}
		m.stats[k] = s
	}
	return s
}

func (m *memoryStatStore) RecordAnswer(ctx context.Context, userID int, topic string, questionID int, isCorrect bool) (*models.DashboardStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s := m.load(userID, topic)
	s.Attempted++
	if isCorrect {
		s.Correct++
		if questionID > 0 {
			i := sort.SearchInts(s.Solved, questionID)
			if i == len(s.Solved) || s.Solved[i] != questionID {
				s.Solved = append(s.Solved, 0)
				copy(s.Solved[i+1:], s.Solved[i:])
				s.Solved[i] = questionID
			}
		}
	}
	return copyStat(s), nil
}

func (m *memoryStatStore) ResetTopic(ctx context.Context, userID int, topic string) (*models.DashboardStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s := m.load(userID, topic)
	s.Attempted = 0
	s.Correct = 0
	return copyStat(s), nil
}

func (m *memoryStatStore) ResetAll(ctx context.Context, userID int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for k, s := range m.stats {
		if k.userID == userID && (s.Attempted != 0 || s.Correct != 0) {
			s.Attempted = 0
			s.Correct = 0
			count++
		}
	}
	return count, nil
}

type mockCatalog struct {
	groups   []models.TopicGroup
	question *models.Question
	err      error
}

func (m *mockCatalog) ListTopicGroups(ctx context.Context, courseID *int) ([]models.TopicGroup, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.groups, nil
}

func (m *mockCatalog) GetByID(ctx context.Context, id int) (*models.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.question == nil || m.question.ID != id {
		return nil, fmt.Errorf("question %d: %w", id, models.ErrNotFound)
	}
	return m.question, nil
}
