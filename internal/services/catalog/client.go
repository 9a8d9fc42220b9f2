// Package catalog talks to the music catalog service over HTTP.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"crate/internal/domain"
	crateerrors "crate/internal/errors"
)

// maxErrorBody bounds how much of an unexpected response is kept for messages.
const maxErrorBody = 512

// Client handles all catalog API operations.
type Client struct {
	httpAdapter domain.HTTPAdapter
	logger      *slog.Logger
}

var (
	_ domain.Authenticator = (*Client)(nil)
	_ domain.Catalog       = (*Client)(nil)
)

// normalizeURL removes trailing slashes from a URL to ensure consistent API endpoint construction.
func normalizeURL(url string) string {
	return strings.TrimRight(url, "/")
}

// NewClient creates a new catalog client.
func NewClient(httpAdapter domain.HTTPAdapter, logger *slog.Logger) *Client {
	return &Client{
		httpAdapter: httpAdapter,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionID string   `json:"sessionId"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
}

// Login performs one login attempt. Failures are returned as
// *errors.AuthenticationError: 401 and 403 are classified as invalid
// credentials, everything else as KindOther.
func (c *Client) Login(ctx context.Context, baseURL, username, password string) (*domain.Session, error) {
	loginURL := normalizeURL(baseURL) + "/login"

	c.logger.DebugContext(ctx, "Logging in to catalog service",
		"baseURL", baseURL,
		"username", username)

	resp, err := c.httpAdapter.Post(ctx, loginURL, loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, crateerrors.NewAuthenticationError(baseURL, username, crateerrors.KindOther, 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, crateerrors.NewAuthenticationError(baseURL, username,
			crateerrors.KindInvalidCredentials, resp.StatusCode,
			crateerrors.NewHTTPError(resp.StatusCode, http.MethodPost, loginURL, ""))
	case resp.StatusCode != http.StatusOK:
		return nil, crateerrors.NewAuthenticationError(baseURL, username,
			crateerrors.KindOther, resp.StatusCode,
			crateerrors.NewHTTPError(resp.StatusCode, http.MethodPost, loginURL, readErrorBody(resp.Body)))
	}

	var loginResp loginResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&loginResp); decodeErr != nil {
		return nil, crateerrors.NewAuthenticationError(baseURL, username, crateerrors.KindOther, resp.StatusCode,
			fmt.Errorf("failed to decode login response: %w", decodeErr))
	}

	if loginResp.SessionID == "" {
		return nil, crateerrors.NewAuthenticationError(baseURL, username, crateerrors.KindOther, resp.StatusCode,
			fmt.Errorf("login succeeded but no session id was returned"))
	}

	session := &domain.Session{
		SessionID: loginResp.SessionID,
		Username:  loginResp.Username,
		Roles:     loginResp.Roles,
	}
	if session.Username == "" {
		session.Username = username
	}
	if session.Roles == nil {
		session.Roles = []string{}
	}

	c.logger.DebugContext(ctx, "Login successful",
		"baseURL", baseURL,
		"username", session.Username)

	return session, nil
}

// Search retrieves the products matching query.
func (c *Client) Search(
	ctx context.Context,
	baseURL string,
	session *domain.Session,
	query string,
) ([]domain.ProductSummary, error) {
	searchURL := normalizeURL(baseURL) + "/products?" + url.Values{"search": {query}}.Encode()

	c.logger.DebugContext(ctx, "Searching catalog", "baseURL", baseURL, "query", query)

	resp, err := c.httpAdapter.GetWithSession(ctx, searchURL, session.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, crateerrors.NewHTTPError(resp.StatusCode, http.MethodGet, searchURL, readErrorBody(resp.Body))
	}

	var products []domain.ProductSummary
	if decodeErr := json.NewDecoder(resp.Body).Decode(&products); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", decodeErr)
	}

	c.logger.DebugContext(ctx, "Search finished", "query", query, "count", len(products))

	return products, nil
}

// FetchProduct retrieves a single product. A missing product is reported as
// an HTTPError matching errors.ErrNotFound.
func (c *Client) FetchProduct(
	ctx context.Context,
	baseURL string,
	session *domain.Session,
	productID string,
) (*domain.ProductDetail, error) {
	productURL := normalizeURL(baseURL) + "/products/" + url.PathEscape(productID)

	c.logger.DebugContext(ctx, "Fetching product", "baseURL", baseURL, "productId", productID)

	resp, err := c.httpAdapter.GetWithSession(ctx, productURL, session.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, crateerrors.NewHTTPError(resp.StatusCode, http.MethodGet, productURL, readErrorBody(resp.Body))
	}

	var product domain.ProductDetail
	if decodeErr := json.NewDecoder(resp.Body).Decode(&product); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", decodeErr)
	}

	return &product, nil
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(body))
}
