// Package api implements the domain resource interfaces against the remote
// authenticated resource API over HTTP.
package api

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

	"github.com/hanifw/kantong-sync/internal/domain"
)

// TokenProvider supplies the bearer credential attached to every request. How
// the token is obtained or refreshed is outside this package.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider returning a fixed credential.
type StaticToken string

// Token implements TokenProvider
func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

// Client is the shared HTTP transport for the per-entity repositories.
// Timeouts live in the underlying http.Client; a timeout surfaces as an
// ordinary fetch failure.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenProvider
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, domain.ErrInvalidInput)
	}
	return &Client{
		base:   u,
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := *c.base
	u.Path = c.base.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("credential: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrFetchFailed, method, path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, path)
	case res.StatusCode >= 400:
		// drain a little of the body for the log line, then discard
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%w: %s %s returned %d: %s", domain.ErrFetchFailed, method, path, res.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", domain.ErrFetchFailed, method, path, err)
	}
	return nil
}

func periodQuery(p domain.Period, f domain.TransactionFilters) url.Values {
	q := url.Values{}
	q.Set("month", fmt.Sprintf("%d", p.Month))
	q.Set("year", fmt.Sprintf("%d", p.Year))
	if f.Type != nil {
		q.Set("type", string(*f.Type))
	}
	if f.AccountID != nil {
		q.Set("account_id", fmt.Sprintf("%d", *f.AccountID))
	}
	return q
}
