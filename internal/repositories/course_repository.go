package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/practicehub/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetAll retrieves all courses ordered by ID
func (r *courseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `SELECT id, name, description FROM courses ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		var description sql.NullString
		if err := rows.Scan(&course.ID, &course.Name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		course.Description = description.String
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// Exists checks whether a course with the given ID exists
func (r *courseRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM courses WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check course existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new course and sets its ID.
// A duplicate name is reported as a ConflictError.
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `INSERT INTO courses (name, description) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, course.Name, course.Description)
	if err != nil {
		if isMySQLError(err, mysqlErrDuplicateEntry) {
			return models.NewConflictError("course", "course already exists")
		}
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get course id: %w", err)
	}
	course.ID = int(id)

	return nil
}
