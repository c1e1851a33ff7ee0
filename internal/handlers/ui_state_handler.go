package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/lesson-portal/internal/models"
	"go.uber.org/zap"
)

const (
	uiStateCookieName = "ui_state"
	uiStateMaxAge     = 30 * 24 * time.Hour
)

// UIStateService is the interface that wraps methods for remembered view state
type UIStateService interface {
	// Decode parses a stored UI state, returning nil when it is absent or malformed
	Decode(raw string) *models.UIState
	// Encode serializes a UI state for storage
	Encode(state models.UIState) (string, error)
}

// uiStateStore keeps the UI state in a cookie
type uiStateStore struct {
	service UIStateService
	logger  *zap.Logger
}

func newUIStateStore(service UIStateService, logger *zap.Logger) *uiStateStore {
	return &uiStateStore{service: service, logger: logger}
}

// load returns the remembered state, or an empty one
func (s *uiStateStore) load(r *http.Request) models.UIState {
	cookie, err := r.Cookie(uiStateCookieName)
	if err != nil {
		return models.UIState{}
	}
	if state := s.service.Decode(cookie.Value); state != nil {
		return *state
	}
	return models.UIState{}
}

// save stores the state; failures only cost the remembered state
func (s *uiStateStore) save(w http.ResponseWriter, state models.UIState) {
	value, err := s.service.Encode(state)
	if err != nil {
		s.logger.Warn("failed to store UI state", zap.Error(err))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     uiStateCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(uiStateMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clear removes the stored state
func (s *uiStateStore) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     uiStateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// UIStateHandler exposes the remembered view state
type UIStateHandler struct {
	BaseHandler
	uiState *uiStateStore
}

// NewUIStateHandler creates a new UI state handler
func NewUIStateHandler(uiState UIStateService, logger *zap.Logger) *UIStateHandler {
	return &UIStateHandler{
		BaseHandler: BaseHandler{Logger: logger},
		uiState:     newUIStateStore(uiState, logger),
	}
}

// RegisterRoutes registers all UI state handler routes
func (h *UIStateHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ui-state", h.GetUIState)
	r.Delete("/ui-state", h.ClearUIState)
}

// GetUIState handles GET /ui-state
// @Summary Get remembered UI state
// @Description Get the remembered grade, class and game. Missing or malformed state yields an empty object.
// @Tags ui-state
// @Produce json
// @Success 200 {object} models.UIState "Remembered state"
// @Router /ui-state [get]
func (h *UIStateHandler) GetUIState(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.uiState.load(r))
}

// ClearUIState handles DELETE /ui-state
// @Summary Clear remembered UI state
// @Tags ui-state
// @Success 204 "No Content"
// @Router /ui-state [delete]
func (h *UIStateHandler) ClearUIState(w http.ResponseWriter, r *http.Request) {
	h.uiState.clear(w)
	w.WriteHeader(http.StatusNoContent)
}
