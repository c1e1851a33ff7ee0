package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/japanesestudent/lesson-portal/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel zapcore.Level
	}{
		{name: "success is logged at info", status: http.StatusOK, expectedLevel: zapcore.InfoLevel},
		{name: "client error is logged at info", status: http.StatusNotFound, expectedLevel: zapcore.InfoLevel},
		{name: "bad gateway is logged at warn", status: http.StatusBadGateway, expectedLevel: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			logger := zap.New(core)

			handler := middlewares.RequestIDMiddleware(LoggerMiddleware(logger)(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("ok"))
				}),
			))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/games?gradeId=2", nil)
			req.Header.Set(middlewares.RequestIDHeader, "req-1")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			ctx := entry.ContextMap()
			assert.Equal(t, "req-1", ctx["request_id"])
			assert.Equal(t, int64(tt.status), ctx["status"])
			assert.Equal(t, int64(2), ctx["bytes"])
			assert.Equal(t, "gradeId=2", ctx["query"])
		})
	}
}
