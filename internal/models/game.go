package models

// Game is an entry of the educational game-selection screen
type Game struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MinGrade    int    `json:"minGrade"`
	MaxGrade    int    `json:"maxGrade"`
}

// SelectGameRequest represents a game chosen on the selection screen
type SelectGameRequest struct {
	Slug    string `json:"slug"`
	GradeID int    `json:"gradeId"`
}
