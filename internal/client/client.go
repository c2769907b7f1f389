// Package client talks to the activity signup service over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hay-kot/activityboard/internal/core/activity"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// StatusError is an application-level rejection: the service answered with a
// non-2xx status. Detail is the string "detail" field of the body, if any.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("service returned %d", e.StatusCode)
}

// AsStatusError returns the StatusError in err's chain, if there is one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Client is an HTTP client for the activities endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
	newID   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// New creates a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     zerolog.Nop(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EncodeComponent percent-encodes s for use as a path segment or query value.
// Spaces become %20 rather than '+'.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// SignupPath returns the request URI for signing email up to name.
func SignupPath(name, email string) string {
	return "/activities/" + EncodeComponent(name) + "/signup?email=" + EncodeComponent(email)
}

// UnregisterPath returns the request URI for removing email from name.
func UnregisterPath(name, email string) string {
	return "/activities/" + EncodeComponent(name) + "/unregister?email=" + EncodeComponent(email)
}

// ListActivities fetches all activities in the order the service returns them.
func (c *Client) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	resp, err := c.do(ctx, http.MethodGet, "/activities")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isOK(resp.StatusCode) {
		return nil, &StatusError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	var activities []activity.Activity
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

// Signup registers email for the named activity and returns the service's
// confirmation message.
func (c *Client) Signup(ctx context.Context, name, email string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, SignupPath(name, email))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isOK(resp.StatusCode) {
		return "", &StatusError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode signup response: %w", err)
	}
	return body.Message, nil
}

// Unregister removes email from the named activity. The response body is
// not inspected.
func (c *Client) Unregister(ctx context.Context, name, email string) error {
	resp, err := c.do(ctx, http.MethodDelete, UnregisterPath(name, email))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if !isOK(resp.StatusCode) {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, requestURI string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+requestURI, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	id := c.newID()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Err(err).
			Str("method", method).
			Str("uri", requestURI).
			Str("request_id", id).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, requestURI, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("uri", requestURI).
		Str("request_id", id).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	return resp, nil
}

func isOK(status int) bool {
	return status >= 200 && status < 300
}

// readDetail extracts a string "detail" field from an error body. Validation
// errors carry a list there instead; those yield "".
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxBodySize)).Decode(&body); err != nil {
		return ""
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
