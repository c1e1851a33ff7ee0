package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/japanesestudent/lesson-portal/internal/models"
	"github.com/japanesestudent/lesson-portal/internal/transport"
	"go.uber.org/zap"
)

const lessonsPath = "/api/lessons"

// ErrIncompleteLesson is returned when the lessons API acknowledges a creation
// without echoing back a lesson carrying id, title and position.
var ErrIncompleteLesson = errors.New("lessons API returned an incomplete lesson")

// createLessonBody is the payload the lessons API expects on creation
type createLessonBody struct {
	LevelID  int    `json:"levelId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}

type adminLessonService struct {
	api    transport.Doer
	logger *zap.Logger
}

// NewAdminLessonService creates a new admin lesson service
func NewAdminLessonService(api transport.Doer, logger *zap.Logger) *adminLessonService {
	return &adminLessonService{
		api:    api,
		logger: logger,
	}
}

// FetchLessonsForClass retrieves the lessons of a class in response order.
//
// Transport failures are returned as they are, so callers can inspect
// *transport.HTTPError and *transport.UnexpectedContentTypeError directly.
func (s *adminLessonService) FetchLessonsForClass(ctx context.Context, classID int) ([]models.Lesson, error) {
	query := url.Values{"gradeLevelId": {strconv.Itoa(classID)}}
	records, err := transport.Request[[]models.BackendRecord](ctx, s.api, lessonsPath+"?"+query.Encode(), transport.Options{})
	if err != nil {
		s.logger.Error("failed to fetch lessons for class", zap.Int("class_id", classID), zap.Error(err))
		return nil, err
	}

	lessons := make([]models.Lesson, 0, len(records))
	for _, record := range records {
		lesson := ToDomainLesson(record, classID)
		if !lesson.IsComplete() {
			s.logger.Warn("lesson record is missing required fields",
				zap.Int("class_id", classID),
				zap.Strings("missing", lesson.MissingFields),
			)
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}

// CreateLesson creates a lesson and returns it as echoed by the lessons API.
// Title and position are validated by the creation form, not here.
func (s *adminLessonService) CreateLesson(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error) {
	record, err := transport.Request[models.BackendRecord](ctx, s.api, lessonsPath, transport.Options{
		Method: http.MethodPost,
		Body: createLessonBody{
			LevelID:  req.ClassID,
			Title:    req.Title,
			Position: req.Position,
			IsActive: req.IsActive,
		},
	})
	if err != nil {
		s.logger.Error("failed to create lesson", zap.Int("class_id", req.ClassID), zap.Error(err))
		return nil, err
	}

	lesson := ToDomainLesson(record, req.ClassID)
	if record == nil || !lesson.IsComplete() {
		s.logger.Error("lessons API returned an incomplete lesson",
			zap.Int("class_id", req.ClassID),
			zap.Strings("missing_fields", lesson.MissingFields),
		)
		return nil, ErrIncompleteLesson
	}
	return &lesson, nil
}
