package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

// FeedbackService is the interface that wraps the AI feedback provider.
type FeedbackService interface {
	// Method Analyze ask the provider to explain the user's answer.
	//
	// Missing request fields result in a *models.ValidationError.
	Analyze(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResponse, error)
}

// FeedbackHandler handles HTTP requests for AI feedback
type FeedbackHandler struct {
	BaseHandler
	service FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
// A nil service keeps the route but answers 503.
func NewFeedbackHandler(svc FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the feedback route behind the auth middleware
func (h *FeedbackHandler) RegisterRoutes(r chi.Router, auth func(http.Handler) http.Handler) {
	r.With(auth).Post("/analyze", h.Analyze)
}

// Analyze handles POST /api/v1/analyze
// @Summary Analyze answer
// @Description Get AI generated feedback on a user's answer
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body models.FeedbackRequest true "Answer to analyze"
// @Success 200 {object} models.FeedbackResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/analyze [post]
func (h *FeedbackHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		h.respondError(w, http.StatusServiceUnavailable, "feedback is not configured")
		return
	}

	var req models.FeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		var validation *models.ValidationError
		if errors.As(err, &validation) {
			h.respondError(w, http.StatusBadRequest, validation.Error())
			return
		}
		h.logger.Error("failed to generate feedback", zap.Error(err))
		h.respondError(w, http.StatusBadGateway, "failed to generate feedback")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
