// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/ns1ctl/ns1ctl/internal/cacheutil"
	"github.com/ns1ctl/ns1ctl/internal/config"
	"github.com/ns1ctl/ns1ctl/internal/version"
)

// DefaultEndpoint is the NS1 managed DNS API.
const DefaultEndpoint = "https://api.nsone.net/v1"

// Sentinel errors for client construction. These enable callers to detect
// specific conditions via errors.Is while keeping messages consistent.
var (
	ErrNoAPIKey        = errors.New("api key is not set")
	ErrInvalidEndpoint = errors.New("endpoint is not a valid URL")
)

// Client talks to one NS1 endpoint with one API key. All requests carry the
// key in the X-NSONE-Key header.
type Client struct {
	endpoint   string
	key        string
	httpClient *http.Client
	cacheReads bool
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at a non-default API endpoint, e.g. a
// dedicated DNS instance. A trailing slash is tolerated.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimSuffix(endpoint, "/")
		}
	}
}

// WithHTTPClient swaps the transport, mostly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCacheReads enables the on-disk cache for GET responses. Only
// read-only commands should turn this on; reconciliation always needs a
// fresh fetch.
func WithCacheReads(enabled bool) Option {
	return func(c *Client) {
		c.cacheReads = enabled
	}
}

// NewClient builds a Client for the given API key.
func NewClient(key string, opts ...Option) (*Client, error) {
	if key == "" {
		return nil, ErrNoAPIKey
	}

	c := &Client{
		endpoint:   DefaultEndpoint,
		key:        key,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%q: %w", c.endpoint, ErrInvalidEndpoint)
	}

	return c, nil
}

// Endpoint returns the endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// host returns the endpoint hostname, used to partition the read cache.
func (c *Client) host() string {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "unknown"
	}
	return u.Host
}

// get issues a GET and decodes the JSON response into out, consulting the
// read cache when enabled.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if c.cacheReads {
		cleanHours, _ := config.GetInt("cache.clean")
		if err := cacheutil.Purge(cleanHours); err != nil {
			log.WithError(err).Warn("failed to purge cache")
		}

		if entry, ok := cacheutil.Read([]string{c.host()}, path); ok {
			log.Debugf("cache hit: %s", entry.Path)
			return json.Unmarshal(entry.Data, out)
		}
	}

	data, err := c.roundTrip(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	if c.cacheReads {
		if err := cacheutil.Write([]string{c.host()}, path, data); err != nil {
			log.WithError(err).Warn("failed to write response to cache")
		}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// put, post and del issue write requests. Writes never touch the cache.
func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.write(ctx, http.MethodPut, path, body, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.write(ctx, http.MethodPost, path, body, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	_, err := c.roundTrip(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) write(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	data, err := c.roundTrip(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// roundTrip performs one request, honoring a single rate-limit backoff.
// NS1 throttles per endpoint and answers 429 with a Retry-After hint.
func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	data, retryAfter, err := c.attempt(ctx, method, path, body)
	if retryAfter <= 0 {
		return data, err
	}

	log.Debugf("rate limited, retrying: path=%s wait=%s", path, retryAfter)
	select {
	case <-time.After(retryAfter):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	data, _, err = c.attempt(ctx, method, path, body)
	return data, err
}

func (c *Client) attempt(ctx context.Context, method, path string, body []byte) ([]byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+"/"+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-NSONE-Key", c.key)
	req.Header.Set("User-Agent", "ns1ctl/"+version.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, retryAfter(resp), responseError(resp.StatusCode, doc.Bytes())
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, 0, responseError(resp.StatusCode, doc.Bytes())
	}

	return doc.Bytes(), 0, nil
}

func retryAfter(resp *http.Response) time.Duration {
	if raw := resp.Header.Get("Retry-After"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Second
}

// responseError decodes the NS1 error envelope, {"message": "..."}.
func responseError(status int, body []byte) error {
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &envelope)
	if envelope.Message == "" {
		envelope.Message = http.StatusText(status)
	}
	return &Error{Status: status, Message: envelope.Message}
}
