// Package http provides a small fluent HTTP client for JSON APIs.
//
// Usage:
//
//	c := http.New("http://localhost:5001/api", http.WithTimeout(5*time.Second))
//
//	resp, err := c.Get("/users").WithContext(ctx).Send()
//	var users []models.User
//	err = resp.JSON(&users)
//
//	// POST JSON body
//	resp, err = c.Post("/categories").
//	    Body(map[string]any{"name": "Burgers", "description": "Grilled"}).
//	    Send()
//
// Requests are sent once; a failed call is reported to the caller and
// never retried.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	gohttp "net/http"
	"strings"
	"time"

	"github.com/shashiranjanraj/fooddash/pkg/logger"
)

// defaultTransport is the connection-pooled transport used when no
// WithTransport option is given.
var defaultTransport = &gohttp.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 20,
	IdleConnTimeout:     90 * time.Second,
}

// Client sends requests relative to a base URL.
type Client struct {
	base    string
	hc      *gohttp.Client
	headers map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the round tripper, e.g. with a test mock.
func WithTransport(rt gohttp.RoundTripper) Option {
	return func(c *Client) { c.hc.Transport = rt }
}

// WithTimeout bounds every request including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers[key] = value }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &gohttp.Client{Transport: defaultTransport, Timeout: 30 * time.Second},
		headers: map[string]string{
			"Accept": "application/json",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) Get(path string) *Request    { return c.newRequest(gohttp.MethodGet, path) }
func (c *Client) Post(path string) *Request   { return c.newRequest(gohttp.MethodPost, path) }
func (c *Client) Put(path string) *Request    { return c.newRequest(gohttp.MethodPut, path) }
func (c *Client) Delete(path string) *Request { return c.newRequest(gohttp.MethodDelete, path) }

func (c *Client) newRequest(method, path string) *Request {
	headers := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		headers[k] = v
	}
	return &Request{
		client:  c,
		method:  method,
		url:     c.base + "/" + strings.TrimLeft(path, "/"),
		headers: headers,
		ctx:     context.Background(),
	}
}

// ------------------- Request -------------------

// Request is a fluent HTTP request builder.
type Request struct {
	client  *Client
	method  string
	url     string
	headers map[string]string
	body    any
	ctx     context.Context
}

// Header adds a single header to the request.
func (r *Request) Header(key, value string) *Request {
	r.headers[key] = value
	return r
}

// Body sets the request body. v is marshalled to JSON; pass []byte to send
// a raw JSON body.
func (r *Request) Body(v any) *Request {
	r.body = v
	return r
}

// WithContext sets the request context.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

// URL returns the absolute request URL.
func (r *Request) URL() string { return r.url }

// Send executes the request and returns a Response. Non-2xx statuses are
// not errors here; inspect Response.OK.
func (r *Request) Send() (*Response, error) {
	body, err := r.buildBody()
	if err != nil {
		return nil, err
	}

	req, err := gohttp.NewRequestWithContext(r.ctx, r.method, r.url, body)
	if err != nil {
		return nil, fmt.Errorf("http: build request: %w", err)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.client.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http: %s %s: %w", r.method, r.url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("http: read body: %w", err)
	}

	logger.WithCtx(r.ctx).Debug("http: request",
		"method", r.method,
		"url", r.url,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Raw:        raw,
	}, nil
}

func (r *Request) buildBody() (io.Reader, error) {
	switch v := r.body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(v), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("http: marshal body: %w", err)
		}
		return bytes.NewReader(b), nil
	}
}

// ------------------- Response -------------------

// Response holds a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    gohttp.Header
	Raw        []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON unmarshals the response body into dest.
func (r *Response) JSON(dest any) error {
	if err := json.Unmarshal(r.Raw, dest); err != nil {
		return fmt.Errorf("http: decode JSON: %w", err)
	}
	return nil
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Raw)
}

// Header returns a single response header value.
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}
