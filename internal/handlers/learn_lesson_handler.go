package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/lesson-portal/internal/models"
	"github.com/japanesestudent/lesson-portal/internal/services"
	"go.uber.org/zap"
)

// LearnLessonService is the interface that wraps methods for learner lesson operations
type LearnLessonService interface {
	// FetchLessonsByGrade retrieves the learner lessons of a grade
	//
	// "ctx" is the context for the request.
	// "gradeID" is the ID of the grade.
	//
	// Returns the lessons in response order and an error if any.
	FetchLessonsByGrade(ctx context.Context, gradeID int) ([]models.LearnLesson, error)
}

// LearnLessonHandler handles HTTP requests of the learner lesson screens
type LearnLessonHandler struct {
	BaseHandler
	service LearnLessonService
	uiState *uiStateStore
}

// NewLearnLessonHandler creates a new learner lesson handler
func NewLearnLessonHandler(service LearnLessonService, uiState UIStateService, logger *zap.Logger) *LearnLessonHandler {
	return &LearnLessonHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
		uiState:     newUIStateStore(uiState, logger),
	}
}

// RegisterRoutes registers all learner lesson handler routes
func (h *LearnLessonHandler) RegisterRoutes(r chi.Router) {
	r.Get("/learn/grades/{gradeId}/lessons", h.GetLessonsByGrade)
}

// GetLessonsByGrade handles GET /learn/grades/{gradeId}/lessons
// @Summary Get lessons of a grade
// @Description Get the learner lessons of a grade sorted by order index. The grade is remembered in the UI state.
// @Tags learn
// @Accept json
// @Produce json
// @Param gradeId path int true "Grade ID"
// @Success 200 {array} models.LearnLesson "List of lessons"
// @Failure 400 {object} map[string]string "Invalid grade ID"
// @Failure 502 {object} map[string]string "Lessons API failure"
// @Router /learn/grades/{gradeId}/lessons [get]
func (h *LearnLessonHandler) GetLessonsByGrade(w http.ResponseWriter, r *http.Request) {
	gradeID, err := positiveURLParam(r, "gradeId")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid grade ID")
		return
	}

	lessons, err := h.service.FetchLessonsByGrade(r.Context(), gradeID)
	if err != nil {
		h.RespondUpstreamError(w, err, "could not load lessons")
		return
	}

	services.SortLearnLessonsByOrderIndex(lessons)

	state := h.uiState.load(r)
	state.GradeID = gradeID
	h.uiState.save(w, state)

	h.RespondJSON(w, http.StatusOK, lessons)
}
