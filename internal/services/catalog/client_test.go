package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cratehttp "crate/internal/adapters/http"
	crateerrors "crate/internal/errors"
	"crate/internal/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	adapter := cratehttp.NewAdapter(5*time.Second, 100, 100, testutil.Logger())
	return NewClient(adapter, testutil.Logger()), server.URL + "/api/v1"
}

func TestClient_Login(t *testing.T) {
	// Arrange
	var got loginRequest
	client, baseURL := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sessionId":"abc123","username":"tf-test"}`))
	})

	// Act
	session, err := client.Login(context.Background(), baseURL+"/", "tf-test", "secret")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "abc123", session.SessionID)
	assert.Equal(t, "tf-test", session.Username)
	assert.NotNil(t, session.Roles)
	assert.Empty(t, session.Roles)
	assert.Equal(t, loginRequest{Username: "tf-test", Password: "secret"}, got)
}

func TestClient_Login_Roles(t *testing.T) {
	client, baseURL := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"sessionId":"abc123","username":"admin","roles":["SALES","ADMIN"]}`))
	})

	session, err := client.Login(context.Background(), baseURL, "admin", "secret")

	require.NoError(t, err)
	assert.Equal(t, []string{"SALES", "ADMIN"}, session.Roles)
}

func TestClient_Login_UsernameFallback(t *testing.T) {
	client, baseURL := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"sessionId":"abc123"}`))
	})

	session, err := client.Login(context.Background(), baseURL, "tf-test", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tf-test", session.Username)
}

func TestClient_Login_Failures(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectedKind crateerrors.AuthFailureKind
	}{
		{name: "forbidden", status: http.StatusForbidden, expectedKind: crateerrors.KindInvalidCredentials},
		{name: "unauthorized", status: http.StatusUnauthorized, expectedKind: crateerrors.KindInvalidCredentials},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", expectedKind: crateerrors.KindOther},
		{name: "not found", status: http.StatusNotFound, expectedKind: crateerrors.KindOther},
		{name: "malformed body", status: http.StatusOK, body: "{not json", expectedKind: crateerrors.KindOther},
		{name: "missing session id", status: http.StatusOK, body: `{"username":"tf-test"}`, expectedKind: crateerrors.KindOther},
		{name: "empty session id", status: http.StatusOK, body: `{"sessionId":""}`, expectedKind: crateerrors.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, baseURL := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			session, err := client.Login(context.Background(), baseURL, "tf-test", "wrong")

			assert.Nil(t, session)
			require.True(t, crateerrors.IsAuthentication(err))

			var authErr *crateerrors.AuthenticationError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.expectedKind, authErr.Kind)
			assert.Equal(t, tt.status, authErr.StatusCode)
			assert.Equal(t, "tf-test", authErr.Username)
			assert.Equal(t, tt.expectedKind == crateerrors.KindInvalidCredentials, crateerrors.IsInvalidCredentials(err))
		})
	}
}

func TestClient_Login_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL
	server.Close()
	client := NewClient(cratehttp.NewAdapter(time.Second, 100, 100, testutil.Logger()), testutil.Logger())

	_, err := client.Login(context.Background(), deadURL, "tf-test", "secret")

	require.True(t, crateerrors.IsAuthentication(err))
	assert.False(t, crateerrors.IsInvalidCredentials(err))
}

func TestClient_Search(t *testing.T) {
	// Arrange
	client, baseURL := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "queen 1969 & co", r.URL.Query().Get("search"))
		assert.Equal(t, "abc123", r.Header.Get("session-id"))
		_, _ = w.Write([]byte(`[
			{"productId":"p1","name":"A Night at the Opera","artistName":"Queen","releaseYear":1975,"smallestPrice":12.5},
			{"productId":"p2","name":"Jazz","artistName":"Queen","releaseYear":"1978","smallestPrice":9}
		]`))
	})

	// Act
	products, err := client.Search(context.Background(), baseURL, testutil.Session("abc123"), "queen 1969 & co")

	// Assert
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "1975", products[0].ReleaseYear.String())
	assert.Equal(t, "Album Jazz by Queen released in 1978 available from 9.00€", products[1].String())
}

func TestClient_Search_Empty(t *testing.T) {
	client, baseURL := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	products, err := client.Search(context.Background(), baseURL, testutil.Session("abc123"), "nothing")

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_Search_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "session expired",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, crateerrors.ErrUnauthorized)
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			body:   "upstream down",
			check: func(t *testing.T, err error) {
				assert.True(t, crateerrors.IsHTTPStatus(err, http.StatusBadGateway))
				assert.Contains(t, err.Error(), "upstream down")
			},
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{"not":"a list"}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to decode search response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, baseURL := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Search(context.Background(), baseURL, testutil.Session("abc123"), "queen")

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_FetchProduct(t *testing.T) {
	// Arrange
	detail := testutil.Detail("p/1")
	client, baseURL := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/p%2F1", r.URL.EscapedPath())
		assert.Equal(t, "abc123", r.Header.Get("session-id"))
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"productId":   detail.ID,
			"name":        detail.Name,
			"artistName":  detail.ArtistName,
			"releaseYear": 1969,
			"labelName":   detail.LabelName,
			"duration":    detail.Duration,
			"genre":       detail.Genre,
			"songs":       detail.Songs,
			"soundCarriers": []map[string]any{
				{"soundCarrierName": "CD", "amountAvailable": 12, "pricePerCarrier": 9.99},
				{"soundCarrierName": "VINYL", "amountAvailable": 2, "pricePerCarrier": 24.5},
			},
		}))
	})

	// Act
	product, err := client.FetchProduct(context.Background(), baseURL, testutil.Session("abc123"), "p/1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, detail, product)
}

func TestClient_FetchProduct_NotFound(t *testing.T) {
	client, baseURL := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	product, err := client.FetchProduct(context.Background(), baseURL, testutil.Session("abc123"), "missing")

	assert.Nil(t, product)
	assert.True(t, crateerrors.IsNotFound(err))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "http://host/api", normalizeURL("http://host/api//"))
	assert.Equal(t, "http://host/api", normalizeURL("http://host/api"))
}
