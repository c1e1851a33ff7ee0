package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/lesson-portal/internal/transport"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondUpstreamError presents a lessons API failure to the browser.
// fallback is used when the failure carries no readable message.
func (h *BaseHandler) RespondUpstreamError(w http.ResponseWriter, err error, fallback string) {
	status, message := upstreamErrorResponse(err, fallback)
	h.RespondError(w, status, message)
}

// upstreamErrorResponse keeps 4xx statuses of the lessons API and maps everything else to 502
func upstreamErrorResponse(err error, fallback string) (int, string) {
	var httpErr *transport.HTTPError
	if !errors.As(err, &httpErr) {
		return http.StatusBadGateway, fallback
	}

	status := http.StatusBadGateway
	if httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 {
		status = httpErr.StatusCode
	}
	if message := structuredMessage(httpErr.Body); message != "" {
		return status, message
	}
	return status, fallback
}

// structuredMessage extracts "message" or "error" from a JSON error body
func structuredMessage(body string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(payload.Error)
}

// positiveURLParam reads a positive integer path parameter
func positiveURLParam(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return value, nil
}
