// Package newsapi is a client for the NewsAPI top-headlines endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultEndpoint = "https://newsapi.org/v2/top-headlines"

type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithEndpoint points the client at a different top-headlines URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

func NewClient(apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestURL builds the GET URL for p. The key is included, so the result must
// not be logged as-is; see Redact.
func (c *Client) RequestURL(p Params) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint: %w", err)
	}
	q := u.Query()
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Country != "" {
		q.Set("country", p.Country)
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if c.apiKey != "" {
		q.Set("apiKey", c.apiKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Redact masks the apiKey query parameter of a request URL.
func Redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Has("apiKey") {
		q.Set("apiKey", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// List fetches one page of headlines. A nil error guarantees Status is "ok".
func (c *Client) List(ctx context.Context, p Params) (*Response, error) {
	reqURL, err := c.RequestURL(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	var out Response
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Code = out.Code
			apiErr.Message = out.Message
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, decodeErr)
	}

	switch out.Status {
	case StatusOK:
		return &out, nil
	case StatusError:
		return nil, &APIError{StatusCode: resp.StatusCode, Code: out.Code, Message: out.Message}
	default:
		return nil, fmt.Errorf("%w: unexpected status %q", ErrMalformed, out.Status)
	}
}
