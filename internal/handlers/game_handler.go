package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/japanesestudent/lesson-portal/internal/models"
	"github.com/japanesestudent/lesson-portal/internal/services"
	"go.uber.org/zap"
)

// GameService is the interface that wraps methods for the game-selection screen
type GameService interface {
	// GetGamesForGrade returns the games playable in a grade, every game for gradeID 0
	GetGamesForGrade(gradeID int) []models.Game
	// GetBySlug returns a game by slug or services.ErrGameNotFound
	GetBySlug(slug string) (*models.Game, error)
}

// GameHandler handles HTTP requests of the game-selection screen
type GameHandler struct {
	BaseHandler
	service GameService
	uiState *uiStateStore
}

// NewGameHandler creates a new game handler
func NewGameHandler(service GameService, uiState UIStateService, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
		uiState:     newUIStateStore(uiState, logger),
	}
}

// RegisterRoutes registers all game handler routes
func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Get("/", h.GetGames)
		r.Post("/select", h.SelectGame)
	})
}

// GetGames handles GET /games
// @Summary Get games
// @Description Get the games available for a grade. Without gradeId the remembered grade is used.
// @Tags games
// @Produce json
// @Param gradeId query int false "Grade ID"
// @Success 200 {array} models.Game "List of games"
// @Failure 400 {object} map[string]string "Invalid grade ID"
// @Router /games [get]
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	gradeID := h.uiState.load(r).GradeID
	if gradeIDStr := r.URL.Query().Get("gradeId"); gradeIDStr != "" {
		id, err := strconv.Atoi(gradeIDStr)
		if err != nil || id < 0 {
			h.RespondError(w, http.StatusBadRequest, "invalid grade ID")
			return
		}
		gradeID = id
	}

	h.RespondJSON(w, http.StatusOK, h.service.GetGamesForGrade(gradeID))
}

// SelectGame handles POST /games/select
// @Summary Select a game
// @Description Remember the chosen game and grade
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.SelectGameRequest true "Selected game"
// @Success 200 {object} models.Game "Selected game"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Game not found"
// @Router /games/select [post]
func (h *GameHandler) SelectGame(w http.ResponseWriter, r *http.Request) {
	var req models.SelectGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Slug == "" || req.GradeID < 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.service.GetBySlug(req.Slug)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			h.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("failed to select game", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "could not select game")
		return
	}

	state := h.uiState.load(r)
	state.GameSlug = game.Slug
	if req.GradeID > 0 {
		state.GradeID = req.GradeID
	}
	h.uiState.save(w, state)

	h.RespondJSON(w, http.StatusOK, game)
}
