// Package underboss provides the Underboss Go SDK: a typed client for the
// Underboss job-marketplace API built around a data-driven endpoint registry.
package underboss

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/underboss/underboss-go/headers"
)

const defaultBaseURL = "https://api.underboss.app/api/v1"
const defaultUserAgent = "underboss-go/" + Version
const defaultClientName = "underboss-go"

// Config wires the base URL, HTTP client, session, and telemetry for the API
// client. The zero value is usable: it points at production with a fresh,
// logged-out session.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Session is the identity cache the gateway reads tokens from and
	// writes login/profile side effects into. Inject one per test case for
	// isolation; when nil a fresh session is created.
	Session *Session
	// Registry overrides the default endpoint table, mainly for tests.
	Registry  *Registry
	Telemetry TelemetryHooks
	Retry     RetryConfig
	UserAgent string
}

// Client provides high-level helpers for interacting with the Underboss API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	registry   *Registry
	telemetry  TelemetryHooks
	retry      RetryConfig
	userAgent  string

	// Grouped resource clients.
	Account      *AccountClient
	Profile      *ProfileClient
	Paps         *PapsClient
	Media        *MediaClient
	Comments     *CommentsClient
	Applications *ApplicationsClient
	Assignments  *AssignmentsClient
	Chat         *ChatClient
	Payments     *PaymentsClient
	Ratings      *RatingsClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	session := cfg.Session
	if session == nil {
		session = NewSession()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		session:    session,
		registry:   registry,
		telemetry:  cfg.Telemetry,
		retry:      cfg.Retry.normalized(),
		userAgent:  ua,
	}
	client.Account = &AccountClient{client: client}
	client.Profile = &ProfileClient{client: client}
	client.Paps = &PapsClient{client: client}
	client.Media = &MediaClient{client: client}
	client.Comments = &CommentsClient{client: client}
	client.Applications = &ApplicationsClient{client: client}
	client.Assignments = &AssignmentsClient{client: client}
	client.Chat = &ChatClient{client: client}
	client.Payments = &PaymentsClient{client: client}
	client.Ratings = &RatingsClient{client: client}
	return client, nil
}

// Session returns the identity cache this client reads from and writes into.
func (c *Client) Session() *Session { return c.session }

// Registry returns the endpoint table, e.g. to register extension endpoints
// at startup before the first dispatch.
func (c *Client) Registry() *Registry { return c.registry }

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("underboss: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("underboss: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("underboss: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("underboss: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

// newEndpointRequest builds the HTTP request for a resolved endpoint. GET and
// DELETE put leftover payload fields into the query string; other methods
// send them as a JSON body.
func (c *Client) newEndpointRequest(ctx context.Context, method, path string, fields Fields) (*http.Request, error) {
	target := c.buildURL(path)
	var body *bytes.Reader
	switch method {
	case http.MethodGet, http.MethodDelete:
		if query := encodeQuery(fields); query != "" {
			target += "?" + query
		}
	default:
		encoded, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, target, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, target, nil)
	}
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	injectTraceparent(ctx, req)
	return req, nil
}

func (c *Client) prepare(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get(headers.ClientName) == "" {
		req.Header.Set(headers.ClientName, defaultClientName)
	}
	if req.Header.Get(headers.RequestID) == "" {
		req.Header.Set(headers.RequestID, uuid.NewString())
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
