package models

// Lesson is the normalized lesson consumed by the admin lesson views
type Lesson struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
	ClassID  int    `json:"classId"`
	// Timestamps are ISO-8601 strings as sent by the lessons API
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
	// DeletedAt marks a logically deleted lesson
	DeletedAt *string `json:"deletedAt"`
	// MissingFields lists required fields the lessons API did not send
	MissingFields []string `json:"-"`
}

// IsComplete reports whether every required field was present in the source record
func (l Lesson) IsComplete() bool {
	return len(l.MissingFields) == 0
}

// IsDeleted reports whether the lesson is logically deleted
func (l Lesson) IsDeleted() bool {
	return l.DeletedAt != nil
}

// CreateLessonRequest represents the lesson creation form
type CreateLessonRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
	ClassID  int    `json:"classId"`
}

// LearnLesson is a lesson of the learner-facing "lessons by grade" screen
type LearnLesson struct {
	ID         int     `json:"id"`
	UnitName   string  `json:"unitName"`
	LessonName string  `json:"lessonName"`
	OrderIndex int     `json:"orderIndex"`
	Active     bool    `json:"active"`
	UpdatedAt  *string `json:"updatedAt"`
	Mascot     string  `json:"mascot,omitempty"`
}
