package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

const questionColumns = `p.id, p.topic_id, p.topic_name, t.name, t.slug, p.title, p.description, p.options, p.answer_index, p.difficulty`

type questionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *sql.DB, logger *zap.Logger) *questionRepository {
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanQuestion reads a question joined with its (optional) topic entity.
// Questions linked to a topic carry a structured ref; legacy ones carry only the stored name.
func scanQuestion(s rowScanner) (models.Question, error) {
	var (
		q         models.Question
		topicID   sql.NullInt64
		topicName sql.NullString
		joinName  sql.NullString
		joinSlug  sql.NullString
		options   []byte
	)

	err := s.Scan(&q.ID, &topicID, &topicName, &joinName, &joinSlug,
		&q.Title, &q.Description, &options, &q.AnswerIndex, &q.Difficulty)
	if err != nil {
		return q, err
	}

	if topicID.Valid && joinSlug.Valid {
		q.Topic = models.TopicRef{ID: int(topicID.Int64), Name: joinName.String, Slug: joinSlug.String}
	} else {
		q.Topic = models.TopicRef{Name: topicName.String}
	}

	if len(options) > 0 {
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return q, fmt.Errorf("failed to decode options of question %d: %w", q.ID, err)
		}
	}
	if q.Options == nil {
		q.Options = []string{}
	}

	return q, nil
}

// GetAll retrieves all questions ordered by ID
func (r *questionRepository) GetAll(ctx context.Context) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM problems p LEFT JOIN topics t ON t.id = p.topic_id ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	r.logger.Debug("loaded questions", zap.Int("count", len(questions)))
	return questions, nil
}

// GetByID retrieves a single question.
// Returns models.ErrNotFound when no such question exists.
func (r *questionRepository) GetByID(ctx context.Context, id int) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM problems p LEFT JOIN topics t ON t.id = p.topic_id WHERE p.id = ?`

	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("question %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return &q, nil
}

// questionArgs converts a question into its column values, topic first
func questionArgs(q *models.Question) ([]any, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}

	var topicID, topicName any
	if q.Topic.ID > 0 {
		topicID = q.Topic.ID
	} else {
		topicName = q.Topic.Name
	}

	return []any{topicID, topicName, q.Title, q.Description, options, q.AnswerIndex, string(q.Difficulty)}, nil
}

// Create inserts a new question and sets its ID.
// An unknown topic ID is reported as a ValidationError.
func (r *questionRepository) Create(ctx context.Context, q *models.Question) error {
	query := `INSERT INTO problems (topic_id, topic_name, title, description, options, answer_index, difficulty) VALUES (?, ?, ?, ?, ?, ?, ?)`

	args, err := questionArgs(q)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isMySQLError(err, mysqlErrForeignKeyParent) {
			return models.NewValidationError("topic", "topic not found")
		}
		return fmt.Errorf("failed to create question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get question id: %w", err)
	}
	q.ID = int(id)

	return nil
}

// Update replaces all fields of an existing question.
// Callers must check existence first; MySQL reports zero affected rows for unchanged values.
func (r *questionRepository) Update(ctx context.Context, q *models.Question) error {
	query := `UPDATE problems SET topic_id = ?, topic_name = ?, title = ?, description = ?, options = ?, answer_index = ?, difficulty = ? WHERE id = ?`

	args, err := questionArgs(q)
	if err != nil {
		return err
	}
	args = append(args, q.ID)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isMySQLError(err, mysqlErrForeignKeyParent) {
			return models.NewValidationError("topic", "topic not found")
		}
		return fmt.Errorf("failed to update question: %w", err)
	}

	return nil
}

// Delete removes a question.
// Returns models.ErrNotFound when nothing was deleted.
func (r *questionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM problems WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("question %d: %w", id, models.ErrNotFound)
	}

	return nil
}
