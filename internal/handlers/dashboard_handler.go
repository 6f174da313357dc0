package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/practicehub/backend/internal/middleware"
	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

// DashboardService is the interface that wraps methods for per-user progress tracking.
type DashboardService interface {
	// Method GetStats retrieve the user's counters keyed by canonical topic slug.
	GetStats(ctx context.Context, userID int) (map[string]models.TopicStats, error)
	// Method GetSummary merge the user's counters onto the catalog's topic groups.
	//
	// Stats of topics without questions are omitted.
	GetSummary(ctx context.Context, userID int, courseID *int) ([]models.TopicProgress, error)
	// Method SubmitAnswer record one answer and return the updated stat.
	//
	// Every call counts as a new attempt, also when the same question is answered again.
	SubmitAnswer(ctx context.Context, userID int, sub models.AnswerSubmission) (*models.DashboardStat, error)
	// Method ResetTopic zero the user's counters for one topic; solved questions are kept.
	ResetTopic(ctx context.Context, userID int, topic string) (*models.DashboardStat, error)
	// Method ResetAll zero the user's counters for every topic.
	ResetAll(ctx context.Context, userID int) (int, error)
}

// ResetAllResponse reports how many topics were reset
type ResetAllResponse struct {
	Message string `json:"message"`
	Reset   int    `json:"reset"`
}

// DashboardHandler handles HTTP requests for the user dashboard
type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers dashboard routes behind the auth middleware
func (h *DashboardHandler) RegisterRoutes(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(auth)
		r.Get("/stats", h.GetStats)
		r.Get("/summary", h.GetSummary)
		r.Post("/answers", h.SubmitAnswer)
		r.Post("/reset", h.Reset)
	})
}

// userID returns the authenticated caller, responding 401 when absent
func (h *DashboardHandler) userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return id.UserID, true
}

// GetStats handles GET /api/v1/dashboard/stats
// @Summary Get dashboard stats
// @Description Get attempted/correct counters of the current user keyed by topic slug
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]models.TopicStats
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to get dashboard stats")
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// GetSummary handles GET /api/v1/dashboard/summary
// @Summary Get dashboard summary
// @Description Get per-topic progress of the current user with accuracy, resume point and chart data
// @Tags dashboard
// @Produce json
// @Param courseId query int false "Course ID"
// @Success 200 {array} models.TopicProgress
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	courseID, err := optionalIntQuery(r, "courseId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.service.GetSummary(r.Context(), userID, courseID)
	if err != nil {
		h.respondServiceError(w, err, "failed to get dashboard summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// SubmitAnswer handles POST /api/v1/dashboard/answers
// @Summary Submit answer
// @Description Record one answer. Send {questionId, selectedIndex} for server grading or {topic, isCorrect}.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.AnswerSubmission true "Answer"
// @Success 200 {object} models.DashboardStat
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dashboard/answers [post]
func (h *DashboardHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var sub models.AnswerSubmission
	if err := decodeJSON(r, &sub); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	stat, err := h.service.SubmitAnswer(r.Context(), userID, sub)
	if err != nil {
		h.respondServiceError(w, err, "failed to update dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, stat)
}

// Reset handles POST /api/v1/dashboard/reset
// @Summary Reset dashboard
// @Description Zero the counters of one topic, or of every topic when no topic is given. Solved questions are kept.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.ResetRequest false "Topic to reset"
// @Success 200 {object} ResetAllResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dashboard/reset [post]
func (h *DashboardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	// An empty body resets every topic
	var req models.ResetRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Topic) != "" {
		stat, err := h.service.ResetTopic(r.Context(), userID, req.Topic)
		if err != nil {
			h.respondServiceError(w, err, "failed to reset dashboard")
			return
		}
		h.respondJSON(w, http.StatusOK, stat)
		return
	}

	count, err := h.service.ResetAll(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "failed to reset dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, ResetAllResponse{Message: "Dashboard reset successfully", Reset: count})
}
