// Package api is the typed client for the remote commerce REST API. It owns
// request encoding, bearer-token attachment, and translation of error
// responses; all state (cart, wishlist, tokens) lives elsewhere.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mirajehossain/ecom-customer/internal/session"
	"github.com/mirajehossain/ecom-customer/pkg/httpclient"
	"github.com/mirajehossain/ecom-customer/pkg/logger"
)

// Doer executes HTTP requests. Satisfied by httpclient.Client and
// httpclient.CircuitBreakerClient.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client is the commerce API client. Service groups hang off it the way the
// API groups its routes.
type Client struct {
	baseURL string
	http    Doer
	session *session.Manager
	logger  *slog.Logger

	// onUnauthorized fires after a 401 response has cleared the session.
	onUnauthorized func()

	Products   ProductsService
	Categories CategoriesService
	Orders     OrdersService
	Auth       AuthService
}

// New creates an API client. baseURL is the API root, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, doer Doer, sess *session.Manager, log *slog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		session: sess,
		logger:  log,
	}
	c.Products = ProductsService{c}
	c.Categories = CategoriesService{c}
	c.Orders = OrdersService{c}
	c.Auth = AuthService{c}
	return c
}

// OnUnauthorized registers a callback invoked whenever the API answers 401.
// The session tokens are already cleared when it fires.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// do issues a request and decodes the JSON response into out (when non-nil).
// Extra headers may be attached via header.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	ctx = logger.WithCorrelationID(ctx, requestID)

	if token := c.session.AccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := logger.WithContext(ctx, c.logger)
	log.Debug("api request", slog.String("method", method), slog.String("path", path))

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		err := httpclient.ParseResponseError(resp)
		log.Warn("api rejected credentials, clearing session", slog.String("path", path))
		c.session.Clear(ctx)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return err
	}

	if resp.StatusCode >= 400 {
		return httpclient.ParseResponseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil
	}

	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, nil, body, out)
}
