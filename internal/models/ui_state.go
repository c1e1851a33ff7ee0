package models

// UIState is the view state remembered between visits (selected grade, class and game)
type UIState struct {
	GradeID  int    `json:"gradeId,omitempty"`
	ClassID  int    `json:"classId,omitempty"`
	GameSlug string `json:"gameSlug,omitempty"`
}
