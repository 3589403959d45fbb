package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"hackfest/internal/adapters/http/perf"
)

// DefaultTimeout bounds every backend call. The transport default (none)
// is not acceptable for a page render path.
const DefaultTimeout = 10 * time.Second

// credentialsKey is an unexported context key type for forwarded cookies.
type credentialsKey struct{}

// WithCredentials stores the browser's Cookie header value in the context
// so every backend call made for this request carries the caller's session.
func WithCredentials(ctx context.Context, cookieHeader string) context.Context {
	return context.WithValue(ctx, credentialsKey{}, cookieHeader)
}

// CredentialsFromContext returns the forwarded Cookie header, if any.
func CredentialsFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(credentialsKey{}).(string)
	return v, ok && v != ""
}

// APIError is a backend-reported failure with a structured {message} body.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404 — a valid empty state
// for team/submission/progress reads, not a failure.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Message extracts the backend-supplied message for user-facing notices,
// falling back to a generic string for transport-level failures.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client is the shared HTTP client for all backend accessors. It forwards
// the caller's cookie, decodes JSON, and records call timings.
type Client struct {
	base      string
	http      *http.Client
	collector *perf.Collector
}

// NewClient creates a backend client for the given base URL.
// PRE: base is a non-empty absolute URL
// POST: client is ready; collector may be nil to skip instrumentation
func NewClient(base string, collector *perf.Collector) *Client {
	return &Client{
		base:      base,
		http:      &http.Client{Timeout: DefaultTimeout},
		collector: collector,
	}
}

// URL resolves an endpoint tag against the client's base.
func (c *Client) URL(e Endpoint) string {
	return Resolve(c.base, e)
}

// Get issues a GET to the endpoint and decodes the JSON response into out.
// POST: returns *APIError for non-2xx responses; out untouched on error
func (c *Client) Get(ctx context.Context, e Endpoint, out any) error {
	return c.do(ctx, http.MethodGet, c.URL(e), string(e), nil, out)
}

// GetPath issues a GET to the endpoint with extra path/query appended.
func (c *Client) GetPath(ctx context.Context, e Endpoint, suffix string, out any) error {
	return c.do(ctx, http.MethodGet, c.URL(e)+suffix, string(e), nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
// body and out may each be nil.
func (c *Client) Post(ctx context.Context, e Endpoint, body, out any) error {
	return c.do(ctx, http.MethodPost, c.URL(e), string(e), body, out)
}

// Delete issues a DELETE with extra path appended (usually "/{id}").
func (c *Client) Delete(ctx context.Context, e Endpoint, suffix string) error {
	return c.do(ctx, http.MethodDelete, c.URL(e)+suffix, string(e), nil, nil)
}

// do is the single request path: credential forwarding, JSON codec,
// timing, and error translation all live here.
func (c *Client) do(ctx context.Context, method, url, tag string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if cookie, ok := CredentialsFromContext(ctx); ok {
		req.Header.Set("Cookie", cookie)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	c.record(method+" "+tag, start, resp)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Forward relays a raw request to the backend and returns the response
// unclosed, for auth proxy handlers that need to pass Set-Cookie through.
// The caller owns resp.Body.
func (c *Client) Forward(ctx context.Context, method string, e Endpoint, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(e), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if cookie, ok := CredentialsFromContext(ctx); ok {
		req.Header.Set("Cookie", cookie)
	}
	start := time.Now()
	resp, err := c.http.Do(req)
	c.record(method+" "+string(e), start, resp)
	return resp, err
}

// record sends one call timing to the collector.
func (c *Client) record(tag string, start time.Time, resp *http.Response) {
	if c.collector == nil {
		return
	}
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.collector.Record(perf.Entry{
		Kind:       perf.KindBackendCall,
		Path:       tag,
		StatusCode: status,
		DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
		Timestamp:  start,
	})
}

// decodeAPIError reads a {message} body into an APIError. A body that is
// not JSON still yields a usable APIError with only the status code.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
