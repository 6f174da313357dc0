package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/practicehub/backend/internal/models"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps a service error to its HTTP status.
// Unexpected errors are logged and hidden behind fallback.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var validation *models.ValidationError
	var conflict *models.ConflictError

	switch {
	case errors.As(err, &validation):
		h.respondError(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &conflict):
		h.respondError(w, http.StatusConflict, conflict.Message)
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "not found")
	default:
		h.logger.Error(fallback, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON decodes the request body into dst
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// idParam parses the {id} URL parameter
func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// optionalIntQuery parses an optional positive integer query parameter
func optionalIntQuery(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &v, nil
}
