package services

import (
	"context"
	"encoding/json"

	"github.com/japanesestudent/lesson-portal/internal/transport"
)

// doCall records a request sent through mockDoer
type doCall struct {
	path string
	opts transport.Options
}

// mockDoer is a mock implementation of transport.Doer answering with a canned JSON payload
type mockDoer struct {
	payload string
	err     error
	calls   []doCall
}

func (m *mockDoer) Do(ctx context.Context, path string, opts transport.Options, out any) error {
	m.calls = append(m.calls, doCall{path: path, opts: opts})
	if m.err != nil {
		return m.err
	}
	return json.Unmarshal([]byte(m.payload), out)
}
