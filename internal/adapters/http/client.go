package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	// HTTP client retry configuration.
	defaultRetryCount       = 1
	defaultRetryWaitTime    = 500 * time.Millisecond
	defaultRetryMaxWaitTime = 2 * time.Second

	// Rate limiting configuration.
	rateLimitRequestsPerSecond = 10
	rateLimitBurst             = 20
)

const (
	// Standard HTTP content types.
	contentTypeJSON = "application/json"
	userAgent       = "cpgate"
)

// Adapter is an HTTP client adapter using resty with rate limiting.
// Relative URLs are resolved against the base URL; cookies set by the
// gateway are kept for the lifetime of the adapter.
type Adapter struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithRetryCount overrides how often a request that failed at the transport level is retried.
func WithRetryCount(count int) Option {
	return func(a *Adapter) {
		a.client.SetRetryCount(count)
	}
}

// WithRateLimit overrides the client-side request rate.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(a *Adapter) {
		a.SetRateLimit(requestsPerSecond, burst)
	}
}

// NewAdapter creates a new HTTP adapter with rate limiting and retry capabilities.
// Rate limit: 10 requests per second with burst of 20.
func NewAdapter(
	baseURL string,
	timeout time.Duration,
	insecureSkipVerify bool,
	logger *slog.Logger,
	opts ...Option,
) *Adapter {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWaitTime).
		SetRetryMaxWaitTime(defaultRetryMaxWaitTime).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // The local gateway serves a self-signed certificate
		})

	// Rate limiter: 10 requests/second with burst of 20
	limiter := rate.NewLimiter(rate.Limit(rateLimitRequestsPerSecond), rateLimitBurst)

	// Add rate limiting middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	// Add logging middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	adapter := &Adapter{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// Get performs a GET request.
func (a *Adapter) Get(ctx context.Context, url string) (*http.Response, error) {
	resp, err := a.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GET request: %w", err)
	}
	return resp.RawResponse, nil
}

// Post performs a POST request with optional JSON payload.
func (a *Adapter) Post(
	ctx context.Context,
	url string,
	payload any,
) (*http.Response, error) {
	request := a.client.R().SetContext(ctx).SetDoNotParseResponse(true)

	if payload != nil {
		request.SetHeader("Content-Type", contentTypeJSON).SetBody(payload)
	}

	resp, err := request.Post(url)
	if err != nil {
		// Handle resty marshaling errors
		if strings.Contains(err.Error(), "unsupported 'Body' type/value") {
			return nil, fmt.Errorf("failed to prepare POST payload: %w", err)
		}
		return nil, fmt.Errorf("failed to execute POST request: %w", err)
	}
	return resp.RawResponse, nil
}

// SetRateLimit reconfigures the rate limiter in place.
func (a *Adapter) SetRateLimit(requestsPerSecond float64, burst int) {
	a.limiter.SetLimit(rate.Limit(requestsPerSecond))
	a.limiter.SetBurst(burst)
}

// CloseIdleConnections releases pooled connections.
func (a *Adapter) CloseIdleConnections() {
	a.client.GetClient().CloseIdleConnections()
}
