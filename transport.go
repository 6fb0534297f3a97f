package querit

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Doer is the narrow transport collaborator the client sends requests
// through. *http.Client satisfies it; tests substitute a MockDoer.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	// maxPooledConns caps idle connections kept to the API host.
	maxPooledConns = 10

	// connRetryAttempts bounds total tries for connection-level failures:
	// the initial attempt plus one retry.
	connRetryAttempts = 2

	connRetryBaseBackoff = 50 * time.Millisecond
)

// newHTTPClient builds the default pooled transport with the per-call
// timeout ceiling and optional proxy applied.
func newHTTPClient(timeout time.Duration, proxyURL string) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConnsPerHost: maxPooledConns,
		MaxConnsPerHost:     maxPooledConns,
		Proxy:               http.ProxyFromEnvironment,
	}
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, &ArgumentError{Name: "proxy_url", Reason: err.Error()}
		}
		transport.Proxy = http.ProxyURL(parsed)
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// retryingDoer retries connection-level failures once with a short
// exponential backoff. HTTP error statuses are responses, not failures, and
// pass through untouched; timeouts and cancellations are never retried
// since the attempt may have reached the server.
type retryingDoer struct {
	next     Doer
	attempts int
	backoff  time.Duration
}

func newRetryingDoer(next Doer) *retryingDoer {
	return &retryingDoer{
		next:     next,
		attempts: connRetryAttempts,
		backoff:  connRetryBaseBackoff,
	}
}

func (d *retryingDoer) Do(req *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(d.backoffDelay(attempt)):
			}
			if req.Body != nil && req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				req.Body = body
			}
		}
		resp, err := d.next.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryableConnError(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (d *retryingDoer) backoffDelay(attempt int) time.Duration {
	delay := d.backoff
	for i := 2; i < attempt; i++ {
		delay *= 2
	}
	return delay
}

func retryableConnError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}
	return true
}

// isTimeout reports whether a transport failure was a timeout rather than a
// connection-level error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
