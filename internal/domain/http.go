package domain

import (
	"context"
	"net/http"
)

// HTTPAdapter defines the interface for HTTP operations.
type HTTPAdapter interface {
	GetWithSession(ctx context.Context, url, sessionID string) (*http.Response, error)
	Post(ctx context.Context, url string, payload any) (*http.Response, error)
}
