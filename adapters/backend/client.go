// Package backend provides the HTTP client for the margin-optimizer
// backend API. All margin, statistics, and recommendation computation
// happens server-side; this client only ships identifiers out and typed
// payloads back.
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

	"go.uber.org/zap"

	"margin-optimizer/core/types"
	"margin-optimizer/internal/errors"
)

// Config holds backend client configuration
type Config struct {
	// BaseURL is the backend base URL, without a trailing slash
	BaseURL string

	// Timeout bounds each API call
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:5000",
		Timeout: 30 * time.Second,
	}
}

// Client calls the margin-optimizer backend
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a backend client
func New(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// AnalyzeService requests a full service analysis.
func (c *Client) AnalyzeService(ctx context.Context, serviceID string) (*types.ServiceAnalysis, error) {
	var payload types.ServiceAnalysis
	body := map[string]string{"service_id": serviceID}
	if err := c.post(ctx, "/api/analyze", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AnalyzeRenewal requests a renewal analysis.
func (c *Client) AnalyzeRenewal(ctx context.Context, serviceID string) (*types.RenewalAnalysis, error) {
	var payload types.RenewalAnalysis
	body := map[string]string{"service_id": serviceID}
	if err := c.post(ctx, "/api/analyze-renewal", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AnalyzeVendor requests a vendor's negotiation history.
func (c *Client) AnalyzeVendor(ctx context.Context, vendorName string) (*types.VendorHistory, error) {
	var payload types.VendorHistory
	body := map[string]string{"vendor_name": vendorName}
	if err := c.post(ctx, "/api/analyze-vendor", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchStrategy requests the negotiation strategy for one vendor quote.
// The previously fetched price-list options ride along so the backend does
// not re-derive them.
func (c *Client) FetchStrategy(ctx context.Context, serviceID string, vqID int64, vplOptions []types.VPLVendor) (*types.Strategy, error) {
	var payload types.Strategy
	path := fmt.Sprintf("/api/strategy/%s/%d", url.PathEscape(serviceID), vqID)
	body := map[string]interface{}{"vpl_options": vplOptions}
	if err := c.post(ctx, path, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// VendorSuggestions looks up vendor names matching a partial input.
func (c *Client) VendorSuggestions(ctx context.Context, query string) ([]string, error) {
	endpoint := c.baseURL + "/api/vendor-autocomplete?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Internal("failed to build request", err)
	}

	var payload types.VendorSuggestions
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return payload.Vendors, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return errors.Internal("failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return errors.Internal("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes a request and decodes the response. A body-level error field
// is surfaced verbatim as an application error; everything else that goes
// wrong maps to a transport error.
func (c *Client) do(req *http.Request, out interface{}) error {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return errors.Transport("request failed", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Transport("failed to read response", err)
	}

	c.log.Debug("backend request",
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	var probe struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(respBytes, &probe) == nil && probe.Error != "" {
		return errors.Application(probe.Error)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Newf(errors.TypeTransport, "backend returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return errors.Transport("failed to decode response", err)
	}
	return nil
}
