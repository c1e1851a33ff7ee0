package services

import (
	"encoding/json"
	"testing"

	"github.com/japanesestudent/lesson-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, raw string) models.BackendRecord {
	t.Helper()
	var record models.BackendRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	return record
}

func strPtr(s string) *string {
	return &s
}

func TestToDomainLesson(t *testing.T) {
	tests := []struct {
		name     string
		record   string
		fallback int
		expected models.Lesson
	}{
		{
			name:     "complete record",
			record:   `{"id":10,"title":"A","position":1,"isActive":true,"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-02T00:00:00Z","deletedAt":null}`,
			fallback: 3,
			expected: models.Lesson{
				ID: 10, Title: "A", Position: 1, IsActive: true, ClassID: 3,
				CreatedAt: strPtr("2024-01-01T00:00:00Z"),
				UpdatedAt: strPtr("2024-01-02T00:00:00Z"),
			},
		},
		{
			name:     "active spelling is accepted",
			record:   `{"id":1,"title":"B","position":2,"active":true}`,
			fallback: 1,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, IsActive: true, ClassID: 1},
		},
		{
			name:     "isActive wins over active",
			record:   `{"id":1,"title":"B","position":2,"isActive":false,"active":true}`,
			fallback: 1,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, IsActive: false, ClassID: 1},
		},
		{
			name:     "active flag defaults to false",
			record:   `{"id":1,"title":"B","position":2}`,
			fallback: 1,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, ClassID: 1},
		},
		{
			name:     "updateAt spelling is accepted",
			record:   `{"id":1,"title":"B","position":2,"updateAt":"2024-03-03T10:00:00Z"}`,
			fallback: 1,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, ClassID: 1, UpdatedAt: strPtr("2024-03-03T10:00:00Z")},
		},
		{
			name:     "updatedAt wins over updateAt",
			record:   `{"id":1,"title":"B","position":2,"updatedAt":"new","updateAt":"old"}`,
			fallback: 1,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, ClassID: 1, UpdatedAt: strPtr("new")},
		},
		{
			name:     "class id in record is ignored",
			record:   `{"id":1,"title":"B","position":2,"classId":99,"levelId":98}`,
			fallback: 7,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, ClassID: 7},
		},
		{
			name:     "no fallback means class zero",
			record:   `{"id":1,"title":"B","position":2,"classId":99}`,
			fallback: 0,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, ClassID: 0},
		},
		{
			name:     "deleted lesson keeps deletedAt",
			record:   `{"id":1,"title":"B","position":2,"deletedAt":"2024-05-05T00:00:00Z"}`,
			fallback: 1,
			expected: models.Lesson{ID: 1, Title: "B", Position: 2, ClassID: 1, DeletedAt: strPtr("2024-05-05T00:00:00Z")},
		},
		{
			name:     "missing required fields are reported, not defaulted",
			record:   `{"lessonName":"C","orderIndex":4}`,
			fallback: 2,
			expected: models.Lesson{ClassID: 2, MissingFields: []string{"id", "title", "position"}},
		},
		{
			name:     "wrongly typed id counts as missing",
			record:   `{"id":"10","title":"A","position":1.5}`,
			fallback: 2,
			expected: models.Lesson{Title: "A", ClassID: 2, MissingFields: []string{"id", "position"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson := ToDomainLesson(decodeRecord(t, tt.record), tt.fallback)

			assert.Equal(t, tt.expected, lesson)
			assert.Equal(t, len(tt.expected.MissingFields) == 0, lesson.IsComplete())
		})
	}
}

func TestToDomainLesson_ClassIDAlwaysFromFallback(t *testing.T) {
	records := []string{
		`{}`,
		`{"classId":5}`,
		`{"levelId":5}`,
		`{"classId":"5","levelId":6,"id":1,"title":"x","position":1}`,
	}

	for _, raw := range records {
		for _, fallback := range []int{0, 1, 42} {
			lesson := ToDomainLesson(decodeRecord(t, raw), fallback)
			assert.Equal(t, fallback, lesson.ClassID, "record %s", raw)
		}
	}
}

func TestToDomainLesson_NilRecord(t *testing.T) {
	lesson := ToDomainLesson(nil, 4)

	assert.Equal(t, 4, lesson.ClassID)
	assert.False(t, lesson.IsActive)
	assert.Nil(t, lesson.UpdatedAt)
	assert.False(t, lesson.IsComplete())
}

func TestToLearnLesson(t *testing.T) {
	tests := []struct {
		name     string
		record   string
		expected models.LearnLesson
	}{
		{
			name:   "learner shape",
			record: `{"id":3,"unitName":"Unit 1","lessonName":"Colors","orderIndex":2,"active":true,"updatedAt":"2024-01-01T00:00:00Z","mascot":"owl"}`,
			expected: models.LearnLesson{
				ID: 3, UnitName: "Unit 1", LessonName: "Colors", OrderIndex: 2, Active: true,
				UpdatedAt: strPtr("2024-01-01T00:00:00Z"), Mascot: "owl",
			},
		},
		{
			name:     "isActive and updateAt spellings",
			record:   `{"id":4,"lessonName":"Shapes","orderIndex":1,"isActive":true,"updateAt":"x"}`,
			expected: models.LearnLesson{ID: 4, LessonName: "Shapes", OrderIndex: 1, Active: true, UpdatedAt: strPtr("x")},
		},
		{
			name:     "empty record",
			record:   `{}`,
			expected: models.LearnLesson{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToLearnLesson(decodeRecord(t, tt.record)))
		})
	}
}

func TestSortLessonsByPosition(t *testing.T) {
	lessons := []models.Lesson{
		{ID: 1, Position: 2},
		{ID: 2, Position: 1},
		{ID: 3, Position: 2},
		{ID: 4, Position: 1},
	}

	SortLessonsByPosition(lessons)

	ids := make([]int, 0, len(lessons))
	for _, lesson := range lessons {
		ids = append(ids, lesson.ID)
	}
	assert.Equal(t, []int{2, 4, 1, 3}, ids)
}

func TestSortLearnLessonsByOrderIndex(t *testing.T) {
	lessons := []models.LearnLesson{
		{ID: 1, OrderIndex: 3},
		{ID: 2, OrderIndex: 1},
		{ID: 3, OrderIndex: 1},
	}

	SortLearnLessonsByOrderIndex(lessons)

	assert.Equal(t, 2, lessons[0].ID)
	assert.Equal(t, 3, lessons[1].ID)
	assert.Equal(t, 1, lessons[2].ID)
}
