package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/practicehub/backend/internal/models"
)

type topicRepository struct {
	db *sql.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *sql.DB) *topicRepository {
	return &topicRepository{
		db: db,
	}
}

// GetAll retrieves topics ordered by ID, optionally restricted to one course
func (r *topicRepository) GetAll(ctx context.Context, courseID *int) ([]models.Topic, error) {
	query := `SELECT id, name, slug, course_id FROM topics`
	args := []any{}
	if courseID != nil {
		query += ` WHERE course_id = ?`
		args = append(args, *courseID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.Slug, &topic.CourseID); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return topics, nil
}

// ExistsBySlugAndCourse checks whether the (slug, course) pair is already taken
func (r *topicRepository) ExistsBySlugAndCourse(ctx context.Context, slug string, courseID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM topics WHERE slug = ? AND course_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, slug, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check topic existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new topic and sets its ID.
// The unique (slug, course_id) index backs the duplicate check done by the caller.
func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	query := `INSERT INTO topics (name, slug, course_id) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, topic.Name, topic.Slug, topic.CourseID)
	if err != nil {
		if isMySQLError(err, mysqlErrDuplicateEntry) {
			return models.NewConflictError("topic", "topic already exists in this course")
		}
		if isMySQLError(err, mysqlErrForeignKeyParent) {
			return models.NewValidationError("courseId", "course not found")
		}
		return fmt.Errorf("failed to create topic: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get topic id: %w", err)
	}
	topic.ID = int(id)

	return nil
}
