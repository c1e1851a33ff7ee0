package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/japanesestudent/lesson-portal/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoPayload struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestRequest(t *testing.T) {
	longBody := "<html>" + strings.Repeat("é", 300) + "</html>"

	tests := []struct {
		name          string
		status        int
		contentType   string
		body          string
		expected      echoPayload
		validateError func(*testing.T, error)
	}{
		{
			name:        "json payload is decoded",
			status:      http.StatusOK,
			contentType: "application/json; charset=utf-8",
			body:        `{"id":10,"title":"A"}`,
			expected:    echoPayload{ID: 10, Title: "A"},
		},
		{
			name:        "vendor json media type is accepted",
			status:      http.StatusCreated,
			contentType: "application/problem+json",
			body:        `{"id":1,"title":"B"}`,
			expected:    echoPayload{ID: 1, Title: "B"},
		},
		{
			name:        "not found becomes HTTPError with raw body",
			status:      http.StatusNotFound,
			contentType: "text/plain",
			body:        "Not Found",
			validateError: func(t *testing.T, err error) {
				var httpErr *HTTPError
				require.True(t, errors.As(err, &httpErr))
				assert.Equal(t, 404, httpErr.StatusCode)
				assert.Equal(t, "Not Found", httpErr.Body)
			},
		},
		{
			name:        "server error keeps json body text",
			status:      http.StatusInternalServerError,
			contentType: "application/json",
			body:        `{"message":"db down"}`,
			validateError: func(t *testing.T, err error) {
				var httpErr *HTTPError
				require.True(t, errors.As(err, &httpErr))
				assert.Equal(t, 500, httpErr.StatusCode)
				assert.Equal(t, `{"message":"db down"}`, httpErr.Body)
			},
		},
		{
			name:        "html on success becomes UnexpectedContentTypeError",
			status:      http.StatusOK,
			contentType: "text/html",
			body:        "<html><body>login</body></html>",
			validateError: func(t *testing.T, err error) {
				var ctErr *UnexpectedContentTypeError
				require.True(t, errors.As(err, &ctErr))
				assert.Equal(t, "text/html", ctErr.ContentType)
				assert.Equal(t, "<html><body>login</body></html>", ctErr.BodyPreview)
				assert.Contains(t, err.Error(), "<html><body>login</body></html>")
			},
		},
		{
			name:        "preview keeps the first 200 characters",
			status:      http.StatusOK,
			contentType: "text/html",
			body:        longBody,
			validateError: func(t *testing.T, err error) {
				var ctErr *UnexpectedContentTypeError
				require.True(t, errors.As(err, &ctErr))
				assert.Len(t, []rune(ctErr.BodyPreview), 200)
				assert.Equal(t, string([]rune(longBody)[:200]), ctErr.BodyPreview)
				assert.Contains(t, err.Error(), ctErr.BodyPreview)
			},
		},
		{
			name:   "missing content type is rejected",
			status: http.StatusOK,
			body:   `{"id":1}`,
			validateError: func(t *testing.T, err error) {
				var ctErr *UnexpectedContentTypeError
				require.True(t, errors.As(err, &ctErr))
				assert.Empty(t, ctErr.ContentType)
			},
		},
		{
			name:        "malformed json is a decode error",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"id":`,
			validateError: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to decode response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				} else {
					w.Header()["Content-Type"] = nil
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client(), zap.NewNop())
			result, err := Request[echoPayload](context.Background(), client, "/api/lessons", Options{})

			if tt.validateError != nil {
				require.Error(t, err)
				tt.validateError(t, err)
				assert.Equal(t, echoPayload{}, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClient_RequestShape(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotQuery       string
		gotContentType string
		gotRequestID   string
		gotCustom      string
		gotBody        map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get(middlewares.RequestIDHeader)
		gotCustom = r.Header.Get("X-Custom")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":1,"title":"x"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", server.Client(), zap.NewNop())
	ctx := middlewares.WithRequestID(context.Background(), "req-42")

	_, err := Request[echoPayload](ctx, client, "api/lessons?gradeLevelId=3", Options{
		Method: http.MethodPost,
		Header: http.Header{"X-Custom": []string{"yes"}},
		Body:   map[string]any{"levelId": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/lessons", gotPath)
	assert.Equal(t, "gradeLevelId=3", gotQuery)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "yes", gotCustom)
	assert.Equal(t, map[string]any{"levelId": float64(3)}, gotBody)
}

func TestClient_DefaultsAndOverrides(t *testing.T) {
	var gotMethod, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, zap.NewNop())

	result, err := Request[*echoPayload](context.Background(), client, server.URL+"/ping", Options{
		Header: http.Header{"Content-Type": []string{"application/vnd.lessons+json"}},
	})

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "application/vnd.lessons+json", gotContentType)
}

func TestClient_NoContentIsNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), zap.NewNop())
	result, err := Request[map[string]any](context.Background(), client, "/api/lessons", Options{Method: http.MethodPost})

	require.Error(t, err)
	var ctErr *UnexpectedContentTypeError
	require.True(t, errors.As(err, &ctErr))
	assert.Empty(t, ctErr.ContentType)
	assert.Empty(t, ctErr.BodyPreview)
	assert.Nil(t, result)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, nil, zap.NewNop())
	_, err := Request[echoPayload](context.Background(), client, "/api/lessons", Options{})

	require.Error(t, err)
	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
	assert.Contains(t, err.Error(), "request GET /api/lessons failed")
}
