package services

import (
	"errors"

	"github.com/japanesestudent/lesson-portal/internal/models"
)

// ErrGameNotFound is returned for an unknown game slug
var ErrGameNotFound = errors.New("game not found")

// defaultGameCatalog lists the games of the selection screen
var defaultGameCatalog = []models.Game{
	{Slug: "word-match", Title: "Word Match", Description: "Match each word with its picture", MinGrade: 1, MaxGrade: 3},
	{Slug: "number-hunt", Title: "Number Hunt", Description: "Find the numbers hidden in the scene", MinGrade: 1, MaxGrade: 2},
	{Slug: "memory-cards", Title: "Memory Cards", Description: "Flip the cards and find the pairs", MinGrade: 1, MaxGrade: 5},
	{Slug: "spelling-bee", Title: "Spelling Bee", Description: "Spell the word you hear", MinGrade: 2, MaxGrade: 5},
	{Slug: "quick-math", Title: "Quick Math", Description: "Solve as many sums as you can in a minute", MinGrade: 3, MaxGrade: 5},
}

type gameService struct {
	catalog []models.Game
}

// NewGameService creates a game service over catalog; nil means the default catalog
func NewGameService(catalog []models.Game) *gameService {
	if catalog == nil {
		catalog = defaultGameCatalog
	}
	return &gameService{catalog: catalog}
}

// GetGamesForGrade returns the games playable in a grade. gradeID 0 returns every game.
func (s *gameService) GetGamesForGrade(gradeID int) []models.Game {
	games := make([]models.Game, 0, len(s.catalog))
	for _, game := range s.catalog {
		if gradeID == 0 || (gradeID >= game.MinGrade && gradeID <= game.MaxGrade) {
			games = append(games, game)
		}
	}
	return games
}

// GetBySlug returns a game by its slug
func (s *gameService) GetBySlug(slug string) (*models.Game, error) {
	for i := range s.catalog {
		if s.catalog[i].Slug == slug {
			game := s.catalog[i]
			return &game, nil
		}
	}
	return nil, ErrGameNotFound
}
