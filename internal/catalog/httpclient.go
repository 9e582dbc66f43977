package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
)

// HTTPClient implements Source by calling a GravityFit server's REST API.
// Used by the MCP and CLI binaries when the catalog lives on a remote host.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Source = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("httpclient: %s: %w", path, ErrNotFound)
	}
	return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
}

func limitParams(limit int) url.Values {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

func (c *HTTPClient) Search(ctx context.Context, query string, limit int) ([]models.Exoplanet, error) {
	params := limitParams(limit)
	if query != "" {
		params.Set("q", query)
	}

	body, err := c.get(ctx, "/api/v1/exoplanets", params)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode exoplanets: %w", err)
	}
	return resp.Exoplanets, nil
}

func (c *HTTPClient) Get(ctx context.Context, name string) (*models.Exoplanet, error) {
	body, err := c.get(ctx, "/api/v1/exoplanets/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	var p models.Exoplanet
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("httpclient: decode exoplanet: %w", err)
	}
	return &p, nil
}

func (c *HTTPClient) Sample(ctx context.Context, limit int) ([]models.Exoplanet, error) {
	body, err := c.get(ctx, "/api/v1/exoplanets/random", limitParams(limit))
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode sample: %w", err)
	}
	return resp.Exoplanets, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*stats.DatasetStats, error) {
	body, err := c.get(ctx, "/api/v1/exoplanets/stats", nil)
	if err != nil {
		return nil, err
	}

	var s stats.DatasetStats
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("httpclient: decode stats: %w", err)
	}
	return &s, nil
}
