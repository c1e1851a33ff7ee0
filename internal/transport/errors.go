package transport

import "fmt"

// bodyPreviewLimit is how many characters of an unexpected body are kept for diagnostics
const bodyPreviewLimit = 200

// HTTPError is returned when the lessons API answers with a non-2xx status
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// UnexpectedContentTypeError is returned when a 2xx response does not carry JSON
type UnexpectedContentTypeError struct {
	ContentType string
	BodyPreview string
}

func (e *UnexpectedContentTypeError) Error() string {
	return fmt.Sprintf("expected JSON response, got %q: %s", e.ContentType, e.BodyPreview)
}

// preview returns at most bodyPreviewLimit characters of body
func preview(body []byte) string {
	runes := []rune(string(body))
	if len(runes) > bodyPreviewLimit {
		runes = runes[:bodyPreviewLimit]
	}
	return string(runes)
}
