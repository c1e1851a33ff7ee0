package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/japanesestudent/lesson-portal/internal/models"
	"go.uber.org/zap"
)

type uiStateService struct {
	logger *zap.Logger
}

// NewUIStateService creates a new UI state service
func NewUIStateService(logger *zap.Logger) *uiStateService {
	return &uiStateService{logger: logger}
}

// Decode parses a stored UI state. The state is optional cache, so anything
// malformed is logged and treated as absent.
func (s *uiStateService) Decode(raw string) *models.UIState {
	if raw == "" {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		s.logger.Warn("ignoring malformed UI state", zap.String("reason", "base64"), zap.Error(err))
		return nil
	}

	var state models.UIState
	if err := json.Unmarshal(payload, &state); err != nil {
		s.logger.Warn("ignoring malformed UI state", zap.String("reason", "json"), zap.Error(err))
		return nil
	}
	return &state
}

// Encode serializes a UI state for storage
func (s *uiStateService) Encode(state models.UIState) (string, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode UI state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}
