package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/japanesestudent/lesson-portal/internal/models"
	"github.com/japanesestudent/lesson-portal/internal/transport"
	"go.uber.org/zap"
)

const learnLessonsByGradePath = "/api/learn/lessons/by-grade"

type learnLessonService struct {
	api    transport.Doer
	logger *zap.Logger
}

// NewLearnLessonService creates a new learner lesson service
func NewLearnLessonService(api transport.Doer, logger *zap.Logger) *learnLessonService {
	return &learnLessonService{
		api:    api,
		logger: logger,
	}
}

// FetchLessonsByGrade retrieves the learner lessons of a grade in response order.
// Transport failures are returned unchanged.
func (s *learnLessonService) FetchLessonsByGrade(ctx context.Context, gradeID int) ([]models.LearnLesson, error) {
	query := url.Values{"gradeId": {strconv.Itoa(gradeID)}}
	records, err := transport.Request[[]models.BackendRecord](ctx, s.api, learnLessonsByGradePath+"?"+query.Encode(), transport.Options{})
	if err != nil {
		s.logger.Error("failed to fetch lessons by grade", zap.Int("grade_id", gradeID), zap.Error(err))
		return nil, err
	}

	lessons := make([]models.LearnLesson, 0, len(records))
	for _, record := range records {
		lessons = append(lessons, ToLearnLesson(record))
	}
	return lessons, nil
}
