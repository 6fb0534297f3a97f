package querit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

type flakyDoer struct {
	calls    atomic.Int32
	failures int
	err      error
}

func (d *flakyDoer) Do(req *http.Request) (*http.Response, error) {
	n := d.calls.Add(1)
	if int(n) <= d.failures {
		return nil, d.err
	}
	return &http.Response{
		StatusCode: 200,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader([]byte(`{}`))),
		Request:    req,
	}, nil
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestRetryingDoerRetriesConnFailureOnce(t *testing.T) {
	inner := &flakyDoer{failures: 1, err: errors.New("connection refused")}
	doer := newRetryingDoer(inner)
	req, _ := http.NewRequest(http.MethodPost, "https://api.querit.ai/v1/search", bytes.NewReader([]byte(`{}`)))

	resp, err := doer.Do(req)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	resp.Body.Close()
	if got := inner.calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestRetryingDoerGivesUpAfterOneRetry(t *testing.T) {
	inner := &flakyDoer{failures: 3, err: errors.New("connection refused")}
	doer := newRetryingDoer(inner)
	req, _ := http.NewRequest(http.MethodPost, "https://api.querit.ai/v1/search", bytes.NewReader([]byte(`{}`)))

	if _, err := doer.Do(req); err == nil {
		t.Fatal("expected failure after exhausting retries")
	}
	if got := inner.calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestRetryingDoerDoesNotRetryTimeouts(t *testing.T) {
	inner := &flakyDoer{failures: 2, err: timeoutErr{}}
	doer := newRetryingDoer(inner)
	req, _ := http.NewRequest(http.MethodPost, "https://api.querit.ai/v1/search", bytes.NewReader([]byte(`{}`)))

	if _, err := doer.Do(req); err == nil {
		t.Fatal("expected timeout to propagate")
	}
	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("timeouts must not be retried, got %d attempts", got)
	}
}

func TestRetryingDoerDoesNotRetryCancellation(t *testing.T) {
	inner := &flakyDoer{failures: 2, err: context.Canceled}
	doer := newRetryingDoer(inner)
	req, _ := http.NewRequest(http.MethodPost, "https://api.querit.ai/v1/search", bytes.NewReader([]byte(`{}`)))

	if _, err := doer.Do(req); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation to propagate, got %v", err)
	}
	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("cancellations must not be retried, got %d attempts", got)
	}
}

func TestRetryingDoerRewindsBody(t *testing.T) {
	var seen []string
	inner := &recordingDoer{fail: 1, seen: &seen}
	doer := newRetryingDoer(inner)
	req, _ := http.NewRequest(http.MethodPost, "https://api.querit.ai/v1/search", bytes.NewReader([]byte(`{"query":"chat"}`)))

	resp, err := doer.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	resp.Body.Close()
	if len(seen) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(seen))
	}
	for i, body := range seen {
		if body != `{"query":"chat"}` {
			t.Fatalf("attempt %d saw body %q", i+1, body)
		}
	}
}

type recordingDoer struct {
	fail int
	n    int
	seen *[]string
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	data, _ := io.ReadAll(req.Body)
	*d.seen = append(*d.seen, string(data))
	d.n++
	if d.n <= d.fail {
		return nil, errors.New("connection reset")
	}
	return &http.Response{
		StatusCode: 200,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader([]byte(`{}`))),
		Request:    req,
	}, nil
}

func TestBackoffDelayGrows(t *testing.T) {
	doer := &retryingDoer{attempts: 4, backoff: 50 * time.Millisecond}
	if got := doer.backoffDelay(2); got != 50*time.Millisecond {
		t.Fatalf("attempt 2: got %v", got)
	}
	if got := doer.backoffDelay(3); got != 100*time.Millisecond {
		t.Fatalf("attempt 3: got %v", got)
	}
	if got := doer.backoffDelay(4); got != 200*time.Millisecond {
		t.Fatalf("attempt 4: got %v", got)
	}
}
