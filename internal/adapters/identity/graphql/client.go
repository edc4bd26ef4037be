// Package graphql answers identity and account queries from a GraphQL endpoint.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	gql "github.com/machinebox/graphql"
)

const (
	AccountsQuery = `{ actor { accounts { id name } } }`

	apiKeyHeader   = "API-Key"
	defaultTimeout = 30 * time.Second
)

type Client struct {
	Endpoint       string
	APIKey         string
	HTTPClient     *http.Client
	RequestTimeout time.Duration

	mu    sync.Mutex
	cache map[string]json.RawMessage
}

var (
	_ ports.IdentityQuery = (*Client)(nil)
	_ ports.AccountQuery  = (*Client)(nil)
)

type actorUser struct {
	Actor *struct {
		User *struct {
			ID    *string `json:"id"`
			Name  *string `json:"name"`
			Email *string `json:"email"`
		} `json:"user"`
	} `json:"actor"`
}

type actorAccounts struct {
	Actor *struct {
		Accounts []struct {
			ID   json.RawMessage `json:"id"`
			Name string          `json:"name"`
		} `json:"accounts"`
	} `json:"actor"`
}

// CurrentUser runs req.Query and reads actor.user. Fields missing from the
// response stay nil.
func (c *Client) CurrentUser(ctx context.Context, req ports.IdentityRequest) (*domain.User, error) {
	data, err := c.do(ctx, req.Query, req.FetchPolicy)
	if err != nil {
		return nil, err
	}

	var payload actorUser
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if payload.Actor == nil || payload.Actor.User == nil {
		return nil, nil
	}

	user := payload.Actor.User
	return &domain.User{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Accounts reads actor.accounts. A response without the list yields
// domain.ErrNoAccountList.
func (c *Client) Accounts(ctx context.Context) ([]domain.Account, error) {
	data, err := c.do(ctx, AccountsQuery, ports.FetchPolicyCacheFirst)
	if err != nil {
		return nil, err
	}

	var payload actorAccounts
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode accounts response: %w", err)
	}
	if payload.Actor == nil || payload.Actor.Accounts == nil {
		return nil, domain.ErrNoAccountList
	}

	accounts := make([]domain.Account, 0, len(payload.Actor.Accounts))
	for _, entry := range payload.Actor.Accounts {
		id, ok := accountID(entry.ID)
		if !ok {
			// A board document cannot be addressed without an id.
			continue
		}
		accounts = append(accounts, domain.Account{ID: id, Name: entry.Name})
	}

	return accounts, nil
}

// accountID accepts numeric and string ids. Null, empty, and non-scalar ids
// are rejected.
func accountID(raw json.RawMessage) (domain.AccountID, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		return domain.AccountID(text), text != ""
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var number json.Number
	if err := decoder.Decode(&number); err != nil || number == "" {
		return "", false
	}

	return domain.AccountID(number.String()), true
}

func (c *Client) do(ctx context.Context, query string, policy ports.FetchPolicy) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("graphql query is required")
	}

	if policy != ports.FetchPolicyNoCache {
		if data, ok := c.cached(query); ok {
			return data, nil
		}
	}

	endpoint, err := validateEndpoint(c.Endpoint)
	if err != nil {
		return nil, err
	}

	req := gql.NewRequest(query)
	if c.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.APIKey)
	}
	if policy == ports.FetchPolicyNoCache {
		req.Header.Set("Cache-Control", "no-cache")
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var data json.RawMessage
	client := gql.NewClient(endpoint, gql.WithHTTPClient(c.httpClient()))
	if err := client.Run(requestCtx, req, &data); err != nil {
		return nil, fmt.Errorf("run graphql query: %w", err)
	}
	if len(data) == 0 {
		data = json.RawMessage(`null`)
	}

	c.store(query, data)

	return data, nil
}

func (c *Client) cached(query string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.cache[query]
	return data, ok
}

func (c *Client) store(query string, data json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache == nil {
		c.cache = map[string]json.RawMessage{}
	}
	c.cache[query] = data
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func validateEndpoint(endpoint string) (string, error) {
	if endpoint == "" {
		return "", errors.New("graphql endpoint is required")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse graphql endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("graphql endpoint must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("graphql endpoint host is required")
	}

	return parsed.String(), nil
}
