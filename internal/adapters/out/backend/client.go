package backend

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

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/ports"

	"github.com/oapi-codegen/runtime"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxErrorBody       = 4 << 10
)

// Client talks to the platform backend. It implements ports.OrderGateway,
// ports.DriverGateway, ports.AuthGateway and ports.CatalogGateway.
//
// Example:
//
//	session := state.NewSession()
//	client, err := backend.NewClient("http://127.0.0.1:8000", session)
//	if err != nil {
//	    return err
//	}
//	orders, err := client.ListOrders(ctx)
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  ports.TokenSource
	schemas *schemaValidator
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// NewClient creates a client for the backend at baseURL. tokens supplies the
// bearer token of every authenticated request.
func NewClient(baseURL string, tokens ports.TokenSource, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend: parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("backend: base url %q must be absolute", baseURL)
	}

	schemas, err := newSchemaValidator()
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: defaultHTTPTimeout},
		tokens:  tokens,
		schemas: schemas,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// request describes one backend call.
type request struct {
	method string
	path   string
	body   any
	schema string
	public bool
}

// do sends req and decodes the validated response body into out.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("backend: marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL.String()+req.path, body)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.public {
		token, tokenErr := c.tokens.Token()
		if tokenErr != nil {
			return tokenErr
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(req, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read response: %w", err)
	}

	if err = c.schemas.validate(req.schema, req.path, raw); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return &SchemaError{Schema: req.schema, Path: req.path, Cause: err}
	}
	return nil
}

func newStatusError(req request, resp *http.Response) *StatusError {
	statusErr := &StatusError{
		Method:     req.method,
		Path:       req.path,
		StatusCode: resp.StatusCode,
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		statusErr.Message = payload.Message
		if statusErr.Message == "" {
			statusErr.Message = payload.Error
		}
	}
	return statusErr
}

// pathWithID expands the {id} segment of template.
func pathWithID(template string, id kernel.ID) (string, error) {
	segment, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id.Int64())
	if err != nil {
		return "", fmt.Errorf("backend: encode id: %w", err)
	}
	return strings.Replace(template, "{id}", segment, 1), nil
}
