package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/practicehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicRepository_GetAll(t *testing.T) {
	courseID := 3
	columns := []string{"id", "name", "slug", "course_id"}

	tests := []struct {
		name          string
		courseID      *int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "all topics",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "Binary Search", "binary-search", 1).
					AddRow(2, "SQL Joins", "sql-joins", 3)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, slug, course_id FROM topics ORDER BY id`)).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:     "filtered by course",
			courseID: &courseID,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow(2, "SQL Joins", "sql-joins", 3)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, slug, course_id FROM topics WHERE course_id = ? ORDER BY id`)).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow("invalid", "SQL Joins", "sql-joins", 3)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, slug, course_id FROM topics ORDER BY id`)).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewTopicRepository(db)
			tt.setupMock(mock)

			result, err := repo.GetAll(context.Background(), tt.courseID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTopicRepository_ExistsBySlugAndCourse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM topics WHERE slug = ? AND course_id = ?)`)).
		WithArgs("binary-search", 1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsBySlugAndCourse(context.Background(), "binary-search", 1)

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepository_Create(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO topics (name, slug, course_id) VALUES (?, ?, ?)`)

	tests := []struct {
		name      string
		execErr   error
		checkErr  func(*testing.T, error)
		expectSet bool
	}{
		{
			name:      "success",
			expectSet: true,
		},
		{
			name:    "duplicate slug in course",
			execErr: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"},
			checkErr: func(t *testing.T, err error) {
				var conflict *models.ConflictError
				assert.ErrorAs(t, err, &conflict)
			},
		},
		{
			name:    "unknown course",
			execErr: &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			checkErr: func(t *testing.T, err error) {
				var validation *models.ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, "courseId", validation.Field)
			},
		},
		{
			name:    "database error",
			execErr: errors.New("database error"),
			checkErr: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewTopicRepository(db)

			exec := mock.ExpectExec(query).WithArgs("Binary Search", "binary-search", 1)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(9, 1))
			}

			topic := &models.Topic{Name: "Binary Search", Slug: "binary-search", CourseID: 1}
			err := repo.Create(context.Background(), topic)

			if tt.checkErr != nil {
				tt.checkErr(t, err)
				assert.Zero(t, topic.ID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 9, topic.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
