// Package api is the HTTP client for the remote /foods collection.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fooddash/internal/food"
	"fooddash/internal/jsonutil"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// RequestIDHeader carries a per-request UUID so client and server logs line up.
	RequestIDHeader = "X-Request-ID"

	foodsPath      = "/foods"
	maxErrorBody   = 4 << 10
	tracerName     = "fooddash/api"
	defaultTimeout = 10 * time.Second
)

// Client talks to a json-server style /foods API.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration // 0 = keep the http.Client's own timeout
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A nil hc keeps the default.
// The client passed in is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client rooted at baseURL (e.g. http://localhost:3333).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.http.Timeout != c.timeout {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// List fetches the full collection (GET /foods).
func (c *Client) List(ctx context.Context) ([]food.Food, error) {
	var out []food.Food
	if err := c.do(ctx, "list", http.MethodGet, foodsPath, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []food.Food{}
	}
	return out, nil
}

// Create submits draft as-is (POST /foods) and returns the stored Food.
func (c *Client) Create(ctx context.Context, draft food.Draft) (food.Food, error) {
	var out food.Food
	err := c.do(ctx, "create", http.MethodPost, foodsPath, draft, &out)
	return out, err
}

// Update replaces the Food at f.ID (PUT /foods/{id}) and returns the server's copy.
func (c *Client) Update(ctx context.Context, f food.Food) (food.Food, error) {
	var out food.Food
	err := c.do(ctx, "update", http.MethodPut, itemPath(f.ID), f, &out)
	return out, err
}

// Delete removes the Food with id (DELETE /foods/{id}). The response body is ignored.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, "delete", http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id int) string {
	return foodsPath + "/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) (err error) {
	ctx, span := c.tracer.Start(ctx, "foods."+op, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	fail := func(status int, msg string, cause error) error {
		return &Error{Op: op, Method: method, Path: path, StatusCode: status, Message: msg, Err: cause}
	}

	var reader io.Reader
	if body != nil {
		payload, mErr := json.Marshal(body)
		if mErr != nil {
			return fail(0, "", fmt.Errorf("encoding request: %w", mErr))
		}
		reader = bytes.NewReader(payload)
	}

	url := c.baseURL + path
	req, rErr := http.NewRequestWithContext(ctx, method, url, reader)
	if rErr != nil {
		return fail(0, "", rErr)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", url),
		attribute.String("fooddash.request_id", requestID),
	)

	resp, dErr := c.http.Do(req)
	if dErr != nil {
		return fail(0, "", dErr)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fail(resp.StatusCode, errorMessage(raw), nil)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := jsonutil.DecodeWithContext(resp.Body, out, "decoding "+op+" response", false); err != nil {
		return fail(resp.StatusCode, "", err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} bodies, falling back to the raw text.
func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
