package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/lesson-portal/internal/models"
	"github.com/japanesestudent/lesson-portal/internal/services"
	"go.uber.org/zap"
)

// AdminLessonService is the interface that wraps methods for admin lesson operations
type AdminLessonService interface {
	// FetchLessonsForClass retrieves the lessons of a class from the lessons API
	//
	// "ctx" is the context for the request.
	// "classID" is the ID of the class (grade level) whose lessons are retrieved.
	//
	// Returns the lessons in response order and an error if any.
	// Transport errors are returned unchanged.
	FetchLessonsForClass(ctx context.Context, classID int) ([]models.Lesson, error)
	// CreateLesson creates a lesson through the lessons API
	//
	// "ctx" is the context for the request.
	// "req" is the validated lesson creation form.
	//
	// Returns the created lesson and an error if any.
	CreateLesson(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error)
}

// AdminLessonHandler handles HTTP requests of the admin lesson screens
type AdminLessonHandler struct {
	BaseHandler
	service  AdminLessonService
	uiState  *uiStateStore
	apiKeyMw func(http.Handler) http.Handler
}

// NewAdminLessonHandler creates a new admin lesson handler
func NewAdminLessonHandler(service AdminLessonService, uiState UIStateService, logger *zap.Logger, apiKeyMw func(http.Handler) http.Handler) *AdminLessonHandler {
	return &AdminLessonHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
		uiState:     newUIStateStore(uiState, logger),
		apiKeyMw:    apiKeyMw,
	}
}

// RegisterRoutes registers all admin lesson handler routes
func (h *AdminLessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		if h.apiKeyMw != nil {
			r.Use(h.apiKeyMw)
		}
		r.Get("/classes/{classId}/lessons", h.GetLessonsForClass)
		r.Post("/lessons", h.CreateLesson)
	})
}

// GetLessonsForClass handles GET /admin/classes/{classId}/lessons
// @Summary Get lessons of a class
// @Description Get the lessons of a class sorted by position and remember the class
// @Tags admin
// @Accept json
// @Produce json
// @Param classId path int true "Class ID"
// @Success 200 {array} models.Lesson "List of lessons"
// @Failure 400 {object} map[string]string "Invalid class ID"
// @Failure 502 {object} map[string]string "Lessons API failure"
// @Security ApiKeyAuth
// @Router /admin/classes/{classId}/lessons [get]
func (h *AdminLessonHandler) GetLessonsForClass(w http.ResponseWriter, r *http.Request) {
	classID, err := positiveURLParam(r, "classId")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid class ID")
		return
	}

	lessons, err := h.service.FetchLessonsForClass(r.Context(), classID)
	if err != nil {
		h.RespondUpstreamError(w, err, "could not load lessons")
		return
	}

	state := h.uiState.load(r)
	state.ClassID = classID
	h.uiState.save(w, state)

	services.SortLessonsByPosition(lessons)
	h.RespondJSON(w, http.StatusOK, lessons)
}

// CreateLesson handles POST /admin/lessons
// @Summary Create a lesson
// @Description Submit the lesson creation form
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateLessonRequest true "Lesson creation form"
// @Success 201 {object} models.Lesson "Created lesson"
// @Failure 400 {object} map[string]string "Invalid form"
// @Failure 502 {object} map[string]string "Lessons API failure"
// @Security ApiKeyAuth
// @Router /admin/lessons [post]
func (h *AdminLessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	switch {
	case req.Title == "":
		h.RespondError(w, http.StatusBadRequest, "title is required")
		return
	case req.Position < 1:
		h.RespondError(w, http.StatusBadRequest, "position must be at least 1")
		return
	case req.ClassID < 1:
		h.RespondError(w, http.StatusBadRequest, "invalid class ID")
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), &req)
	if err != nil {
		h.RespondUpstreamError(w, err, "could not create lesson")
		return
	}

	h.RespondJSON(w, http.StatusCreated, lesson)
}
