// Package wordpress implements the entity gateway: an authenticated REST
// client for The Events Calendar and Event Tickets endpoint families on a
// WordPress site.
package wordpress

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/eventwright/calendar-mcp/internal/domain/calendar"
	"github.com/eventwright/calendar-mcp/internal/metrics"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// DefaultRateLimit allows a small burst of sequential pipeline calls
	// without hammering shared hosting.
	DefaultRateLimit = rate.Limit(5.0)
)

// endpointPaths maps each entity kind to its REST route. Events, venues, and
// organizers live under The Events Calendar namespace; tickets under the
// Event Tickets namespace.
var endpointPaths = map[calendar.Kind]string{
	calendar.KindEvent:     "/wp-json/tribe/events/v1/events",
	calendar.KindVenue:     "/wp-json/tribe/events/v1/venues",
	calendar.KindOrganizer: "/wp-json/tribe/events/v1/organizers",
	calendar.KindTicket:    "/wp-json/tribe/tickets/v1/tickets",
}

// Client handles communication with the WordPress REST API. Connection
// configuration is read-only after construction, so one Client is safely
// shared across concurrent requests.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	username    string
	appPassword string
	limiter     *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout. Non-positive values keep the
// current timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRateLimit sets a custom rate limit (requests per second).
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithInsecureSkipVerify disables TLS certificate verification, for
// development sites with self-signed certificates.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		c.httpClient = &http.Client{
			Timeout:   c.httpClient.Timeout,
			Transport: transport,
		}
	}
}

// NewClient creates a WordPress REST client. Authentication uses HTTP Basic
// auth with a WordPress application password.
func NewClient(baseURL, username, appPassword string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		username:    username,
		appPassword: appPassword,
		limiter:     rate.NewLimiter(DefaultRateLimit, 1),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// GetPost fetches a single entity by kind and ID.
func (c *Client) GetPost(ctx context.Context, kind calendar.Kind, id int64) (map[string]any, error) {
	requestURL, err := c.entityURL(kind, id, nil)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, kind, "get", requestURL, nil)
}

// CreatePost creates a new entity from a canonical payload.
func (c *Client) CreatePost(ctx context.Context, kind calendar.Kind, payload map[string]any) (map[string]any, error) {
	requestURL, err := c.collectionURL(kind, nil)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, kind, "create", requestURL, payload)
}

// UpdatePost updates an existing entity. The tribe REST endpoints accept
// POST for updates.
func (c *Client) UpdatePost(ctx context.Context, kind calendar.Kind, id int64, payload map[string]any) (map[string]any, error) {
	requestURL, err := c.entityURL(kind, id, nil)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, kind, "update", requestURL, payload)
}

// DeletePost deletes an entity. With force the entity bypasses trash and is
// removed permanently.
func (c *Client) DeletePost(ctx context.Context, kind calendar.Kind, id int64, force bool) (map[string]any, error) {
	query := url.Values{}
	if force {
		query.Set("force", "true")
	}
	requestURL, err := c.entityURL(kind, id, query)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodDelete, kind, "delete", requestURL, nil)
}

// ListPosts lists entities of a kind with the given query parameters
// (search, pagination, date filters — passed through to the backend).
func (c *Client) ListPosts(ctx context.Context, kind calendar.Kind, query url.Values) (map[string]any, error) {
	requestURL, err := c.collectionURL(kind, query)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, kind, "list", requestURL, nil)
}

func (c *Client) collectionURL(kind calendar.Kind, query url.Values) (string, error) {
	path, ok := endpointPaths[kind]
	if !ok {
		return "", fmt.Errorf("no endpoint for entity kind %q", kind)
	}
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	return requestURL, nil
}

func (c *Client) entityURL(kind calendar.Kind, id int64, query url.Values) (string, error) {
	base, err := c.collectionURL(kind, nil)
	if err != nil {
		return "", err
	}
	requestURL := fmt.Sprintf("%s/%d", base, id)
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	return requestURL, nil
}

// do executes one request against the backend and decodes the JSON entity
// it returns. Failures map onto the gateway taxonomy: ErrNotFound, ErrAuth,
// *APIError for remote validation rejections, and wrapped transport errors.
func (c *Client) do(ctx context.Context, method string, kind calendar.Kind, operation, requestURL string, payload map[string]any) (map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.appPassword)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.WordPressRequestLatency.WithLabelValues(kind.String(), operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.WordPressRequestsTotal.WithLabelValues(kind.String(), operation, "transport").Inc()
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.WordPressRequestsTotal.WithLabelValues(kind.String(), operation, "transport").Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		metrics.WordPressRequestsTotal.WithLabelValues(kind.String(), operation, "auth").Inc()
		return nil, fmt.Errorf("%w (status %d)", ErrAuth, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		metrics.WordPressRequestsTotal.WithLabelValues(kind.String(), operation, "not_found").Inc()
		return nil, fmt.Errorf("%s: %w", kind, ErrNotFound)
	case resp.StatusCode >= 400:
		metrics.WordPressRequestsTotal.WithLabelValues(kind.String(), operation, "remote_validation").Inc()
		return nil, decodeAPIError(resp.StatusCode, raw)
	}

	var entity map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &entity); err != nil {
			metrics.WordPressRequestsTotal.WithLabelValues(kind.String(), operation, "transport").Inc()
			return nil, fmt.Errorf("parse response: %w", err)
		}
	}

	metrics.WordPressRequestsTotal.WithLabelValues(kind.String(), operation, "success").Inc()
	return entity, nil
}

// decodeAPIError extracts the WordPress error envelope {code, message} when
// present, falling back to the raw body.
func decodeAPIError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && (envelope.Code != "" || envelope.Message != "") {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
