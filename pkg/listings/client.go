package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// Client is the single outbound gateway to the listings backend. Every
// request goes through do, which attaches the bearer credential sourced
// fresh from the token source and normalizes all failures into either an
// *APIError or a *NetworkError; callers never see raw transport errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger

	// Communities, Apartments, and Users are the typed resource gateways.
	Communities *CommunityGateway
	Apartments  *ApartmentGateway
	Users       *UserGateway
}

// NewClient creates a listings API client with the given configuration.
func NewClient(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     config.Tokens,
		logger:     logger.With("component", "listings-client"),
	}
	c.Communities = &CommunityGateway{c: c}
	c.Apartments = &ApartmentGateway{c: c}
	c.Users = &UserGateway{c: c}
	return c
}

// do performs one request against the /api namespace. body is JSON-encoded
// when non-nil; a successful response is decoded into out when out is
// non-nil and the body is non-empty.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + apiPrefix + path
	reqID := "req_" + uuid.New().String()[:8]
	logger := c.logger.With("method", method, "path", path, "request_id", reqID)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// The credential is read per call, not cached at construction, so a
	// logout or re-login is honored by the very next request.
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("reading response: %w", err)}
	}

	logger.Debug("response received", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// messageFromBody extracts a backend "message" field from an error body.
func messageFromBody(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		return payload.Message
	}
	return ""
}
