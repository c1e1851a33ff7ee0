// Package transport is the HTTP boundary towards the lessons REST service.
//
// Every call is a single request: no retries, no client-side timeout. Non-2xx statuses
// surface as *HTTPError and non-JSON bodies as *UnexpectedContentTypeError.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/japanesestudent/lesson-portal/internal/middlewares"
	"go.uber.org/zap"
)

// Options describes a single request
type Options struct {
	// Method defaults to GET
	Method string
	// Header overrides the default JSON headers
	Header http.Header
	// Body is JSON-encoded when not nil
	Body any
}

// Doer performs a request and decodes the JSON answer into out
type Doer interface {
	Do(ctx context.Context, path string, opts Options, out any) error
}

// Client talks to the lessons REST service rooted at baseURL
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new client. A nil httpClient means a client without timeout.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Request performs a request through d and returns the decoded payload.
// The payload shape is trusted as T without further validation.
func Request[T any](ctx context.Context, d Doer, path string, opts Options) (T, error) {
	var out T
	if err := d.Do(ctx, path, opts, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Do implements Doer
func (c *Client) Do(ctx context.Context, path string, opts Options, out any) error {
	req, err := c.newRequest(ctx, path, opts)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("lessons API request failed",
			zap.String("request_id", middlewares.GetRequestID(ctx)),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
		)
		return fmt.Errorf("request %s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("lessons API returned error status",
			zap.String("request_id", middlewares.GetRequestID(ctx)),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode),
		)
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isJSON(contentType) {
		return &UnexpectedContentTypeError{ContentType: contentType, BodyPreview: preview(body)}
	}

	if len(bytes.TrimSpace(body)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, path string, opts Options) (*http.Request, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID := middlewares.GetRequestID(ctx); requestID != "" {
		req.Header.Set(middlewares.RequestIDHeader, requestID)
	}
	for key, values := range opts.Header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return req, nil
}

// resolve joins a base-relative path to the base URL; absolute URLs pass through
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
