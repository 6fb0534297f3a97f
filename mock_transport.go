package querit

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// MockDoer is an in-memory transport for unit tests without hitting the
// API. Queue outcomes with WithResponse/WithError; each Do call consumes
// one. Recorded requests are available through Requests.
type MockDoer struct {
	mu       sync.Mutex
	queue    []mockOutcome
	requests []*http.Request
	bodies   []string
}

// MockDoerError is returned when the mock is used without queued outcomes.
type MockDoerError struct {
	Reason string
}

func (e MockDoerError) Error() string { return "mock transport: " + e.Reason }

type mockOutcome struct {
	status int
	body   string
	err    error
}

// NewMockDoer creates an empty mock transport.
func NewMockDoer() *MockDoer {
	return &MockDoer{}
}

// WithResponse enqueues an HTTP status and body for the next Do call.
func (m *MockDoer) WithResponse(status int, body string) *MockDoer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockOutcome{status: status, body: body})
	return m
}

// WithError enqueues a transport failure for the next Do call.
func (m *MockDoer) WithError(err error) *MockDoer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockOutcome{err: err})
	return m
}

// Do pops the next queued outcome. The request and its body are recorded
// before the outcome is returned.
func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var body string
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		body = string(data)
	}
	m.requests = append(m.requests, req)
	m.bodies = append(m.bodies, body)
	if len(m.queue) == 0 {
		return nil, MockDoerError{Reason: "no queued outcomes"}
	}
	outcome := m.queue[0]
	m.queue = m.queue[1:]
	if outcome.err != nil {
		return nil, outcome.err
	}
	return &http.Response{
		StatusCode: outcome.status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(outcome.body)),
		Request:    req,
	}, nil
}

// Requests returns the requests seen so far.
func (m *MockDoer) Requests() []*http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*http.Request(nil), m.requests...)
}

// RequestBodies returns the recorded request bodies, index-aligned with
// Requests.
func (m *MockDoer) RequestBodies() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.bodies...)
}
