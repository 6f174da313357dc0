package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course business logic.
type CourseService interface {
	// Method List retrieve all courses using configured repository.
	List(ctx context.Context) ([]models.Course, error)
	// Method Create validate and store a new course.
	//
	// An empty name results in a *models.ValidationError, a duplicate name in a *models.ConflictError.
	Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
}

// CourseHandler handles HTTP requests for courses
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers course routes; admin guards the write endpoints
func (h *CourseHandler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/courses", h.List)
	r.With(admin).Post("/courses", h.Create)
}

// List handles GET /api/v1/courses
// @Summary List courses
// @Description Get all courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get courses")
		return
	}

	h.respondJSON(w, http.StatusOK, courses)
}

// Create handles POST /api/v1/courses
// @Summary Create course
// @Description Create a new course (admin only)
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CreateCourseRequest true "Course"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/courses [post]
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create course")
		return
	}

	h.respondJSON(w, http.StatusCreated, course)
}
