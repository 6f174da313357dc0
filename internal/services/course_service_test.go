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

func TestCourseService_List(t *testing.T) {
	tests := []struct {
		name          string
		repo          *mockCourseRepository
		expectedError bool
		expectedCount int
	}{
		{
			name:          "success",
			repo:          &mockCourseRepository{courses: []models.Course{{ID: 1, Name: "Algorithms"}, {ID: 2, Name: "Databases"}}},
			expectedCount: 2,
		},
		{
			name:          "repository error",
			repo:          &mockCourseRepository{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCourseService(tt.repo, zap.NewNop())

			result, err := svc.List(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}
		})
	}
}

func TestCourseService_Create(t *testing.T) {
	t.Run("trims input", func(t *testing.T) {
		repo := &mockCourseRepository{createdID: 4}
		svc := NewCourseService(repo, zap.NewNop())

		course, err := svc.Create(context.Background(), models.CreateCourseRequest{Name: "  Algorithms ", Description: " Sorting "})

		require.NoError(t, err)
		assert.Equal(t, &models.Course{ID: 4, Name: "Algorithms", Description: "Sorting"}, course)
	})

	t.Run("empty name", func(t *testing.T) {
		repo := &mockCourseRepository{}
		svc := NewCourseService(repo, zap.NewNop())

		course, err := svc.Create(context.Background(), models.CreateCourseRequest{Name: "   "})

		var validation *models.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "name", validation.Field)
		assert.Nil(t, course)
		assert.Nil(t, repo.created)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := &mockCourseRepository{err: models.NewConflictError("course", "course already exists")}
		svc := NewCourseService(repo, zap.NewNop())

		_, err := svc.Create(context.Background(), models.CreateCourseRequest{Name: "Algorithms"})

		var conflict *models.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})
}
