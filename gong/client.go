// Package gong provides a client for the Gong v2 REST API, covering call
// listing and transcript retrieval with Gong's HMAC request signing.
package gong

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the Gong v2 API root.
const DefaultBaseURL = "https://api.gong.io/v2"

// Credentials holds a Gong API access key pair. Both values are opaque strings
// issued by Gong; both must be non-empty.
type Credentials struct {
	AccessKey    string
	AccessSecret string
}

// Client is a Gong v2 API client. It signs every outbound request with the
// configured credentials. The zero value is not usable; construct with NewClient.
//
// Client is safe for concurrent use: all fields are set at construction and
// never mutated.
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	signer     *Signer
	logger     *slog.Logger
	now        func() time.Time
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Useful for pointing the client at a
// test server. The URL must not end with a trailing slash.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for outbound requests.
// If not set, http.DefaultClient is used.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger for request diagnostics.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock sets the time source used for request timestamps.
// Intended for tests that need deterministic signatures.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a Gong API client with the given credentials.
// Returns ErrMissingCredentials if either credential is empty.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if creds.AccessKey == "" || creds.AccessSecret == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		creds:      creds,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		signer:     NewSigner(creds.AccessSecret),
		logger:     slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ListCalls fetches call records in the given date range via GET /calls.
// Unset range bounds are omitted from the request; upstream applies its own
// defaults and rejects inverted ranges.
func (c *Client) ListCalls(ctx context.Context, params ListCallsParams) (*CallsResponse, error) {
	query := url.Values{}
	if params.FromDateTime != "" {
		query.Set("fromDateTime", params.FromDateTime)
	}
	if params.ToDateTime != "" {
		query.Set("toDateTime", params.ToDateTime)
	}

	// Reads sign the query parameter object rather than a body.
	var signPayload []byte
	if !params.isZero() {
		var err error
		signPayload, err = json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("gong: failed to marshal query parameters: %w", err)
		}
	}

	raw, err := c.do(ctx, http.MethodGet, "/calls", query, signPayload, nil)
	if err != nil {
		return nil, err
	}

	var resp CallsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("gong: failed to decode calls response: %w", err)
	}
	resp.Raw = raw

	return &resp, nil
}

// RetrieveTranscripts fetches transcripts for the given call IDs via
// POST /calls/transcript. The filter always requests entities, interaction
// summaries, and trackers. An empty ID list is forwarded as-is; upstream
// decides whether to reject it.
func (c *Client) RetrieveTranscripts(ctx context.Context, callIDs []string) (*TranscriptsResponse, error) {
	body, err := json.Marshal(transcriptRequest{
		Filter: transcriptFilter{
			CallIDs:                    callIDs,
			IncludeEntities:            true,
			IncludeInteractionsSummary: true,
			IncludeTrackers:            true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gong: failed to marshal transcript request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/calls/transcript", nil, body, body)
	if err != nil {
		return nil, err
	}

	var resp TranscriptsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("gong: failed to decode transcripts response: %w", err)
	}
	resp.Raw = raw

	return &resp, nil
}

// do issues one signed request and returns the response body.
// path is relative to the API root and is also the path bound into the
// signature. signPayload is the byte sequence the signature covers (body for
// writes, serialized query parameters for reads, nil for neither); body is
// the actual request body, nil for GETs.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, signPayload, body []byte) (json.RawMessage, error) {
	timestamp := c.now().UTC().Format(time.RFC3339)
	signature := c.signer.Sign(method, path, timestamp, signPayload)

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("gong: failed to create request: %w", err)
	}

	// All four auth headers are required by upstream on every call.
	basic := base64.StdEncoding.EncodeToString([]byte(c.creds.AccessKey + ":" + c.creds.AccessSecret))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("X-Gong-AccessKey", c.creds.AccessKey)
	req.Header.Set("X-Gong-Timestamp", timestamp)
	req.Header.Set("X-Gong-Signature", signature)

	c.logger.DebugContext(ctx, "gong api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, respBody)
		c.logger.DebugContext(ctx, "gong api error", "method", method, "path", path,
			"status", resp.StatusCode, "request_id", apiErr.RequestID)
		return nil, apiErr
	}

	return respBody, nil
}
