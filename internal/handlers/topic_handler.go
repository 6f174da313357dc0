package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

// TopicService is the interface that wraps methods for topic business logic.
type TopicService interface {
	// Method List retrieve topics, restricted to one course when "courseID" is not nil.
	List(ctx context.Context, courseID *int) ([]models.Topic, error)
	// Method Create derive the slug from the topic name and store the topic.
	//
	// Unknown courses and names without letters or digits result in a *models.ValidationError.
	// A (slug, course) pair that already exists results in a *models.ConflictError.
	Create(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error)
}

// TopicHandler handles HTTP requests for topics
type TopicHandler struct {
	BaseHandler
	service TopicService
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(svc TopicService, logger *zap.Logger) *TopicHandler {
	return &TopicHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers topic routes; admin guards the write endpoints
func (h *TopicHandler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/topics", h.List)
	r.With(admin).Post("/topics", h.Create)
}

// List handles GET /api/v1/topics
// @Summary List topics
// @Description Get all topics, optionally filtered by course
// @Tags topics
// @Produce json
// @Param courseId query int false "Course ID"
// @Success 200 {array} models.Topic
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/topics [get]
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := optionalIntQuery(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	topics, err := h.service.List(r.Context(), courseID)
	if err != nil {
		h.respondServiceError(w, err, "failed to get topics")
		return
	}

	h.respondJSON(w, http.StatusOK, topics)
}

// Create handles POST /api/v1/topics
// @Summary Create topic
// @Description Create a new topic in a course (admin only). The slug is derived from the name.
// @Tags topics
// @Accept json
// @Produce json
// @Param request body models.CreateTopicRequest true "Topic"
// @Success 201 {object} models.Topic
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/topics [post]
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	topic, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create topic")
		return
	}

	h.respondJSON(w, http.StatusCreated, topic)
}
