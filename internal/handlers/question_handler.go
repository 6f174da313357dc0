package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

// QuestionService is the interface that wraps methods for question business logic.
type QuestionService interface {
	// Method List retrieve all questions in stored order.
	//
	// Every topic reference is returned resolved: structured references verbatim,
	// raw topic strings as {name, slug} with the slug derived from the name.
	List(ctx context.Context) ([]models.Question, error)
	// Method GetByID retrieve a question by its ID.
	//
	// If the question does not exist, an error wrapping models.ErrNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.Question, error)
	// Method Create validate and store a new question.
	//
	// Fewer than two options, an answer index outside the options, an unknown difficulty
	// or an empty topic result in a *models.ValidationError.
	Create(ctx context.Context, req models.QuestionRequest) (*models.Question, error)
	// Method Update validate and replace an existing question.
	//
	// Please reference Create method for validation rules.
	Update(ctx context.Context, id int, req models.QuestionRequest) (*models.Question, error)
	// Method Delete remove a question by its ID.
	Delete(ctx context.Context, id int) error
	// Method ListTopicGroups group all questions by canonical topic slug.
	//
	// When "courseID" is not nil only groups of that course's topics are returned.
	ListTopicGroups(ctx context.Context, courseID *int) ([]models.TopicGroup, error)
}

// QuestionHandler handles HTTP requests for questions and topic groups
type QuestionHandler struct {
	BaseHandler
	service QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(svc QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers question routes; admin guards the write endpoints
func (h *QuestionHandler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/topics/groups", h.ListTopicGroups)
	r.Route("/questions", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List handles GET /api/v1/questions
// @Summary List questions
// @Description Get all questions with resolved topic references
// @Tags questions
// @Produce json
// @Success 200 {array} models.Question
// @Failure 500 {object} map[string]string
// @Router /api/v1/questions [get]
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get questions")
		return
	}

	h.respondJSON(w, http.StatusOK, questions)
}

// GetByID handles GET /api/v1/questions/{id}
// @Summary Get question by ID
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.Question
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/questions/{id} [get]
func (h *QuestionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	question, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get question")
		return
	}

	h.respondJSON(w, http.StatusOK, question)
}

// Create handles POST /api/v1/questions
// @Summary Create question
// @Description Create a new question (admin only). Topic may be a string or an object {id, name, slug}.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body models.QuestionRequest true "Question"
// @Success 201 {object} models.Question
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/questions [post]
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	question, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create question")
		return
	}

	h.respondJSON(w, http.StatusCreated, question)
}

// Update handles PUT /api/v1/questions/{id}
// @Summary Update question
// @Description Replace an existing question (admin only)
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body models.QuestionRequest true "Question"
// @Success 200 {object} models.Question
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/questions/{id} [put]
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.QuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	question, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update question")
		return
	}

	h.respondJSON(w, http.StatusOK, question)
}

// Delete handles DELETE /api/v1/questions/{id}
// @Summary Delete question
// @Description Delete a question (admin only)
// @Tags questions
// @Param id path int true "Question ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/questions/{id} [delete]
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err, "failed to delete question")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTopicGroups handles GET /api/v1/topics/groups
// @Summary List topic groups
// @Description Group questions by canonical topic slug, optionally restricted to one course
// @Tags topics
// @Produce json
// @Param courseId query int false "Course ID"
// @Success 200 {array} models.TopicGroup
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/topics/groups [get]
func (h *QuestionHandler) ListTopicGroups(w http.ResponseWriter, r *http.Request) {
	courseID, err := optionalIntQuery(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	groups, err := h.service.ListTopicGroups(r.Context(), courseID)
	if err != nil {
		h.respondServiceError(w, err, "failed to get topic groups")
		return
	}

	h.respondJSON(w, http.StatusOK, groups)
}
