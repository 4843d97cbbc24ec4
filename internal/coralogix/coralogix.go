// Package coralogix implements a small client for the Coralogix log
// search API. All user-supplied input is sanitized before it is forwarded:
// query text is collapsed and length-limited, timeframes must carry both
// ends, and pagination values are clamped to the API's limits.
package coralogix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultDomain is the public Coralogix API endpoint.
	DefaultDomain = "api.coralogix.com"
	// EnvAPIKey supplies the API key when the config leaves it empty.
	EnvAPIKey = "CORALOGIX_API_KEY"
	// EnvDomain overrides the API domain.
	EnvDomain = "CORALOGIX_DOMAIN"

	maxQueryLength = 2048
	maxPageSize    = 500
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("coralogix API key is not configured")

// ErrInvalidRequest wraps sanitization failures so callers can map them
// to client errors instead of upstream failures.
var ErrInvalidRequest = errors.New("invalid coralogix search request")

// Timeframe bounds a search. Both ends are required.
type Timeframe struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Pagination carries optional paging controls. Zero values are omitted
// from the request.
type Pagination struct {
	Limit    int `json:"limit,omitempty"`
	Offset   int `json:"offset,omitempty"`
	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize,omitempty"`
}

// SearchRequest is a sanitizable search. Filters are forwarded verbatim
// after key stringification.
type SearchRequest struct {
	Query      string                 `json:"query"`
	Timeframe  Timeframe              `json:"timeframe"`
	Filters    map[string]interface{} `json:"filters,omitempty"`
	Pagination *Pagination            `json:"pagination,omitempty"`
}

// Client talks to one Coralogix domain with one API key.
type Client struct {
	domain  string
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient builds a client, falling back to the CORALOGIX_DOMAIN and
// CORALOGIX_API_KEY environment variables for unset fields.
func NewClient(domain, apiKey string) *Client {
	if domain == "" {
		domain = os.Getenv(EnvDomain)
	}
	if domain == "" {
		domain = DefaultDomain
	}
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	return &Client{
		domain: domain,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// WithBaseURL is used by tests to point the client at a local server.
// In normal operation requests go to https://<domain>.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// Search executes one sanitized search request and decodes the response
// body as JSON.
func (c *Client) Search(ctx context.Context, req SearchRequest) (map[string]interface{}, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload, err := c.sanitize(req)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	url := c.baseURL
	if url == "" {
		url = "https://" + c.domain
	}
	url += "/api/v1/logs/search"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("reach coralogix: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("coralogix request failed with status %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("coralogix returned invalid JSON: %w", err)
	}
	return result, nil
}

func (c *Client) sanitize(req SearchRequest) (SearchRequest, error) {
	req.Query = cleanString(req.Query, maxQueryLength)

	tf, err := validateTimeframe(req.Timeframe)
	if err != nil {
		return SearchRequest{}, err
	}
	req.Timeframe = tf

	if req.Pagination != nil {
		p, err := validatePagination(*req.Pagination)
		if err != nil {
			return SearchRequest{}, err
		}
		req.Pagination = &p
	}
	return req, nil
}

// cleanString collapses internal whitespace and truncates to maxLength.
func cleanString(value string, maxLength int) string {
	cleaned := strings.Join(strings.Fields(value), " ")
	if len(cleaned) > maxLength {
		cleaned = cleaned[:maxLength]
	}
	return cleaned
}

func validateTimeframe(tf Timeframe) (Timeframe, error) {
	if tf.From == "" || tf.To == "" {
		return Timeframe{}, fmt.Errorf("%w: timeframe requires both 'from' and 'to' values", ErrInvalidRequest)
	}
	return Timeframe{
		From: cleanString(tf.From, 128),
		To:   cleanString(tf.To, 128),
	}, nil
}

func validatePagination(p Pagination) (Pagination, error) {
	if p.Limit < 0 {
		return Pagination{}, fmt.Errorf("%w: pagination limit cannot be negative", ErrInvalidRequest)
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.Offset < 0 {
		return Pagination{}, fmt.Errorf("%w: pagination offset cannot be negative", ErrInvalidRequest)
	}
	if p.Page < 0 {
		return Pagination{}, fmt.Errorf("%w: pagination page cannot be negative", ErrInvalidRequest)
	}
	if p.PageSize < 0 {
		return Pagination{}, fmt.Errorf("%w: pagination page size cannot be negative", ErrInvalidRequest)
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p, nil
}
