package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// Standard HTTP content types.
	contentTypeJSON = "application/json"

	// Header names understood by the catalog service.
	headerRequestID = "X-Request-ID"
	headerSessionID = "session-id"
)

// Adapter is an HTTP client adapter using resty with rate limiting.
// Requests are never retried; a failed call is reported to the caller as is.
type Adapter struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewAdapter creates a new HTTP adapter. Outgoing requests share one token
// bucket of requestsPerSecond with the given burst.
func NewAdapter(timeout time.Duration, requestsPerSecond float64, burst int, logger *slog.Logger) *Adapter {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", contentTypeJSON)

	a := &Adapter{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		logger:  logger,
	}

	// Rate limiting middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return a.limiter.Wait(req.Context())
	})

	// Request correlation
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(headerRequestID) == "" {
			req.SetHeader(headerRequestID, uuid.NewString())
		}
		return nil
	})

	// Logging middleware
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
			"requestID", req.Header.Get(headerRequestID),
		)
		return nil
	})

	return a
}

// GetWithSession performs a GET request carrying the catalog session header.
// The caller owns the returned body.
func (a *Adapter) GetWithSession(ctx context.Context, url, sessionID string) (*http.Response, error) {
	request := a.client.R().SetContext(ctx).SetDoNotParseResponse(true)
	if sessionID != "" {
		request.SetHeader(headerSessionID, sessionID)
	}

	resp, err := request.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GET request: %w", err)
	}
	a.logResponse(ctx, resp)
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
	a.logResponse(ctx, resp)
	return resp.RawResponse, nil
}

// logResponse logs a completed exchange. Resty skips OnAfterResponse hooks
// for unparsed responses, so the adapter logs them itself.
func (a *Adapter) logResponse(ctx context.Context, resp *resty.Response) {
	a.logger.DebugContext(ctx, "HTTP response",
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"requestID", resp.Request.Header.Get(headerRequestID),
		"duration", resp.Time(),
	)
}
