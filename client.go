package querit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL   = "https://api.querit.ai"
	defaultBasePath  = "/v1/search"
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "querit-go/" + Version
)

// Config wires authentication, endpoint, and transport settings for the
// search client.
type Config struct {
	// APIKey authenticates all requests. Required.
	APIKey string
	// BaseURL is the API endpoint origin. Defaults to https://api.querit.ai.
	BaseURL string
	// BasePath is the search path under BaseURL. Defaults to /v1/search.
	BasePath string
	// Timeout is the per-call ceiling. Defaults to 60s. Expiry surfaces as
	// a server-kind APIError with message "Request timeout".
	Timeout time.Duration
	// ProxyURL routes requests through an HTTP(S) proxy, e.g.
	// "http://127.0.0.1:7890". Ignored when HTTPClient is supplied.
	ProxyURL string
	// HTTPClient substitutes the default pooled transport. The supplied
	// Doer must be safe for concurrent use if Search is called from
	// multiple goroutines.
	HTTPClient Doer
	// Telemetry receives request/response callbacks, log entries, and
	// latency metrics.
	Telemetry TelemetryHooks
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Client is a typed client for the Querit Search API. A Client is immutable
// after construction and safe for concurrent use; concurrent Search calls
// share the pooled transport.
type Client struct {
	url        string
	apiKey     string
	httpClient Doer
	telemetry  TelemetryHooks
	userAgent  string
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &ArgumentError{Name: "api_key", Reason: "an API key must be provided"}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		pooled, err := newHTTPClient(timeout, cfg.ProxyURL)
		if err != nil {
			return nil, err
		}
		httpClient = newRetryingDoer(pooled)
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		url:        normalized + basePath,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ArgumentError{Name: "base_url", Reason: "must not be empty"}
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", &ArgumentError{Name: "base_url", Reason: err.Error()}
	}
	if u.Scheme == "" {
		return "", &ArgumentError{Name: "base_url", Reason: "missing scheme (http/https)"}
	}
	if u.Host == "" {
		return "", &ArgumentError{Name: "base_url", Reason: "missing host"}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

// Search performs one search exchange: serialize the request, POST it, map
// the HTTP outcome to the error taxonomy, and wrap the decoded body.
//
// Errors are never retried here. HTTP error statuses surface as *APIError;
// invalid request fields as *ArgumentError; unsupported filter values as
// *UnsupportedValueError. Connection-level failures other than timeouts
// propagate from the transport wrapped.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	payload, err := req.payload()
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("querit: encode payload: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("querit: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	injectTraceparent(ctx, httpReq)

	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(ctx, httpReq)
	}
	c.telemetry.log(ctx, LogLevelInfo, "http_request", map[string]any{
		"method": httpReq.Method,
		"url":    httpReq.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	latency := time.Since(start)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(ctx, httpReq, resp, err, latency)
	}
	c.telemetry.metric(ctx, "querit_http_request_latency_ms", float64(latency.Milliseconds()), map[string]string{
		"path": httpReq.URL.Path,
	})
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError()
		}
		return nil, fmt.Errorf("querit: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError()
		}
		return nil, fmt.Errorf("querit: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, mapStatus(resp.StatusCode, body)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("querit: decode response: %w", err)
	}
	return newSearchResponse(raw), nil
}

// URL returns the fully assembled search endpoint.
func (c *Client) URL() string { return c.url }
