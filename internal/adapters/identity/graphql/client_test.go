package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userQuery = `{ actor { user { email id name } } }`

func newTestServer(t *testing.T, calls *atomic.Int32, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret-key", r.Header.Get("API-Key"))

		var req struct {
			Query string `json:"query"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Query)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestCurrentUserParsesPartialUser(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTestServer(t, &calls, `{"data":{"actor":{"user":{"email":"ada@example.com"}}}}`)
	client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

	user, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery, FetchPolicy: ports.FetchPolicyNoCache})
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.Email)
	assert.Equal(t, "ada@example.com", *user.Email)
	assert.Nil(t, user.ID)
	assert.Nil(t, user.Name)
}

func TestCurrentUserWithoutUserReturnsNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "null data", body: `{"data":null}`},
		{name: "no actor", body: `{"data":{}}`},
		{name: "null user", body: `{"data":{"actor":{"user":null}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := newTestServer(t, &calls, tt.body)
			client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

			user, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery})
			require.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestCurrentUserNoCacheBypassesCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var sawNoCache atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Cache-Control") == "no-cache" {
			sawNoCache.Store(true)
		}
		_, _ = w.Write([]byte(`{"data":{"actor":{"user":{"id":"7"}}}}`))
	}))
	t.Cleanup(server.Close)
	client := &Client{Endpoint: server.URL, HTTPClient: server.Client()}

	for range 2 {
		_, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery, FetchPolicy: ports.FetchPolicyNoCache})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, sawNoCache.Load())

	for range 2 {
		_, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery, FetchPolicy: ports.FetchPolicyCacheFirst})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestCurrentUserReportsGraphQLErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTestServer(t, &calls, `{"errors":[{"message":"unauthorized"},{"message":"expired key"}]}`)
	client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

	_, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery})
	require.Error(t, err)
	assert.ErrorContains(t, err, "graphql: unauthorized")

	_, err = client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery, FetchPolicy: ports.FetchPolicyCacheFirst})
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCurrentUserReportsHTTPStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	client := &Client{Endpoint: server.URL, HTTPClient: server.Client()}

	_, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery})
	require.Error(t, err)
	assert.ErrorContains(t, err, "non-200 status code: 502")
}

func TestCurrentUserTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	t.Cleanup(server.Close)
	client := &Client{Endpoint: server.URL, HTTPClient: server.Client(), RequestTimeout: 10 * time.Millisecond}

	_, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientRejectsInvalidEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		wantErr  string
	}{
		{name: "empty", endpoint: "", wantErr: "endpoint is required"},
		{name: "scheme", endpoint: "ftp://example.com/graphql", wantErr: "must use http or https"},
		{name: "host", endpoint: "https:///graphql", wantErr: "host is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{Endpoint: tt.endpoint}

			_, err := client.CurrentUser(context.Background(), ports.IdentityRequest{Query: userQuery})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAccountsParsesNumericAndStringIDs(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTestServer(t, &calls, `{"data":{"actor":{"accounts":[{"id":1,"name":"Acme"},{"id":"2","name":"Beta"}]}}}`)
	client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

	accounts, err := client.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Account{{ID: "1", Name: "Acme"}, {ID: "2", Name: "Beta"}}, accounts)
}

func TestAccountsWithoutListReturnsSentinel(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTestServer(t, &calls, `{"data":{"actor":{}}}`)
	client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

	_, err := client.Accounts(context.Background())
	require.ErrorIs(t, err, domain.ErrNoAccountList)
}

func TestAccountsEmptyListIsNotAnError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTestServer(t, &calls, `{"data":{"actor":{"accounts":[]}}}`)
	client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

	accounts, err := client.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountsSkipsEntriesWithoutUsableID(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTestServer(t, &calls, `{"data":{"actor":{"accounts":[
		{"id":null,"name":"Null"},
		{"name":"Missing"},
		{"id":"  ","name":"Blank"},
		{"id":{"nested":1},"name":"Object"},
		{"id":3,"name":"Gamma"}
	]}}}`)
	client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

	accounts, err := client.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Account{{ID: "3", Name: "Gamma"}}, accounts)
}

func TestAccountsCachedAfterFirstAnswer(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTestServer(t, &calls, `{"data":{"actor":{"accounts":[{"id":"1","name":"Acme"}]}}}`)
	client := &Client{Endpoint: server.URL, APIKey: "secret-key", HTTPClient: server.Client()}

	for range 2 {
		accounts, err := client.Accounts(context.Background())
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
	}
	assert.Equal(t, int32(1), calls.Load())
}
