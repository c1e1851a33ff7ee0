package services

import (
	"cmp"
	"slices"

	"github.com/japanesestudent/lesson-portal/internal/models"
)

// ToDomainLesson normalizes a record of the admin lessons resource.
//
// classId always comes from classIDFallback: the lessons API does not echo the foreign key
// on this resource, so classId/levelId in the record are ignored. Every other field comes
// from the record. Missing id, title or position are left at their zero value and reported
// in MissingFields; mapping itself never fails.
func ToDomainLesson(record models.BackendRecord, classIDFallback int) models.Lesson {
	lesson := models.Lesson{ClassID: classIDFallback}

	if id, ok := record.Int("id"); ok {
		lesson.ID = id
	} else {
		lesson.MissingFields = append(lesson.MissingFields, "id")
	}
	if title, ok := record.String("title"); ok {
		lesson.Title = title
	} else {
		lesson.MissingFields = append(lesson.MissingFields, "title")
	}
	if position, ok := record.Int("position"); ok {
		lesson.Position = position
	} else {
		lesson.MissingFields = append(lesson.MissingFields, "position")
	}

	lesson.IsActive, _ = record.FirstBool("isActive", "active")
	lesson.CreatedAt = record.OptionalString("createdAt")
	lesson.UpdatedAt = record.FirstString("updatedAt", "updateAt")
	lesson.DeletedAt = record.OptionalString("deletedAt")

	return lesson
}

// ToLearnLesson normalizes a record of the learner "lessons by grade" resource
func ToLearnLesson(record models.BackendRecord) models.LearnLesson {
	lesson := models.LearnLesson{}
	lesson.ID, _ = record.Int("id")
	lesson.UnitName, _ = record.String("unitName")
	lesson.LessonName, _ = record.String("lessonName")
	lesson.OrderIndex, _ = record.Int("orderIndex")
	lesson.Active, _ = record.FirstBool("active", "isActive")
	lesson.UpdatedAt = record.FirstString("updatedAt", "updateAt")
	lesson.Mascot, _ = record.String("mascot")
	return lesson
}

// SortLessonsByPosition sorts lessons ascending by position, keeping response order on ties
func SortLessonsByPosition(lessons []models.Lesson) {
	slices.SortStableFunc(lessons, func(a, b models.Lesson) int {
		return cmp.Compare(a.Position, b.Position)
	})
}

// SortLearnLessonsByOrderIndex sorts lessons ascending by orderIndex, keeping response order on ties
func SortLearnLessonsByOrderIndex(lessons []models.LearnLesson) {
	slices.SortStableFunc(lessons, func(a, b models.LearnLesson) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
}
