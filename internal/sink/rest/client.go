// Package rest inserts generated records into a Supabase project through its
// PostgREST endpoint.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ashita-ai/agentseed/internal/model"
)

// Config holds the settings needed to construct a Client.
type Config struct {
	// BaseURL is the project URL, e.g. "https://xyz.supabase.co".
	BaseURL string

	// ServiceKey is sent as both the apikey header and the bearer token.
	ServiceKey string

	// HTTPClient is optional. If nil, a client with Timeout and an
	// OpenTelemetry-instrumented transport is used.
	HTTPClient *http.Client

	// Timeout applies to each insert request. Defaults to 30 seconds.
	Timeout time.Duration
}

// Client writes batches with one POST per batch. It implements sink.Sink and
// is safe for concurrent use.
type Client struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("rest: BaseURL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("rest: ServiceKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		client:     httpClient,
	}, nil
}

// Write inserts records into table as a single JSON array. PostgREST runs
// the insert in one transaction, so a rejected batch leaves no partial rows.
func (c *Client) Write(ctx context.Context, table model.Table, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("rest: marshal %s batch: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("rest: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("rest: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return handleResponse(resp, string(table))
}

func (c *Client) tableURL(table model.Table) string {
	return c.baseURL + "/rest/v1/" + string(table)
}

func handleResponse(resp *http.Response, table string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest: read response body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp.StatusCode, table, bodyBytes)
	}
	return nil
}
