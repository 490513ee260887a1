// Package contentful implements a read-only client for the Contentful content
// delivery and preview APIs.
//
// Each Client is bound to one space, one access token and one host. Failed
// calls return *APIError so callers can branch on the HTTP status.
package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultEnvironment = "master"
	defaultTimeout     = 10 * time.Second
	userAgent          = "coursecatalog/1.0"
)

// ClientConfig holds the settings for one Client.
type ClientConfig struct {
	Space       string
	AccessToken string
	// Host defaults to the delivery host.
	Host string
	// Environment defaults to "master".
	Environment string
	Timeout     time.Duration
	// BaseURL overrides scheme and host (e.g. "http://127.0.0.1:8080").
	BaseURL string
	Logger  *slog.Logger
}

// Client talks to a single space through a single API host.
type Client struct {
	space       string
	accessToken string
	environment string
	host        string
	baseURL     string
	httpClient  *retryablehttp.Client
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.Space) == "" {
		return nil, fmt.Errorf("%w: space is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, fmt.Errorf("%w: access token is required", ErrInvalidConfig)
	}

	host := cfg.Host
	if host == "" {
		host = DeliveryHost
	}
	environment := cfg.Environment
	if environment == "" {
		environment = defaultEnvironment
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://" + host
	}

	return &Client{
		space:       cfg.Space,
		accessToken: cfg.AccessToken,
		environment: environment,
		host:        host,
		baseURL:     baseURL,
		httpClient:  buildHTTPClient(cfg.Timeout, cfg.Logger),
	}, nil
}

// buildHTTPClient constructs the HTTP client. Failed requests are never retried.
func buildHTTPClient(timeout time.Duration, logger *slog.Logger) *retryablehttp.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = timeout
	// Logger is an interface, so a nil *slog.Logger would be stored as a
	// non-nil value and called. Fall back to a discarding logger instead.
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	client.Logger = logger
	return client
}

// Space returns the space id the client is bound to.
func (c *Client) Space() string {
	return c.space
}

// Host returns the API host the client talks to.
func (c *Client) Host() string {
	return c.host
}

// GetSpace fetches the space descriptor. It is the cheapest authenticated
// call and doubles as a credential check.
func (c *Client) GetSpace(ctx context.Context) (*Space, error) {
	var space Space
	if err := c.get(ctx, "/spaces/"+url.PathEscape(c.space), nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// GetEntries fetches the entries matching q and resolves links between them.
func (c *Client) GetEntries(ctx context.Context, q *Query) (*EntryCollection, error) {
	path := fmt.Sprintf(
		"/spaces/%s/environments/%s/entries",
		url.PathEscape(c.space),
		url.PathEscape(c.environment),
	)

	var collection EntryCollection
	if err := c.get(ctx, path, q.Values(), &collection); err != nil {
		return nil, err
	}
	resolveLinks(&collection)
	return &collection, nil
}

// get performs an authenticated GET and decodes a JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return newTransportError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody errorBody
		_ = json.Unmarshal(body, &errBody)
		return newStatusError(resp.StatusCode, errBody)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newTransportError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
