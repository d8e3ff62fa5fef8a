// Package services contains client-side consumers of the catalog API: a
// typed HTTP client and the infinite-scroll pager built on top of it.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/jiannachen/ai-magellan-sub001/app/dto"
)

const (
	// requestTimeout is the timeout for individual API requests
	requestTimeout = 15 * time.Second

	// maxRetries bounds transparent retries for transient failures
	maxRetries = 3
)

// SearchParams mirrors the /api/search query contract.
type SearchParams struct {
	Query           string
	Category        string
	PricingModels   []string
	MinQualityScore *int
	IsTrusted       bool
	IsFeatured      bool
	HasFreePlan     bool
	SSLEnabled      bool
	Tags            []string
	SortBy          string
	SortOrder       string
	Page            int
	Limit           int
}

// RankingParams mirrors the /api/rankings query contract.
type RankingParams struct {
	Type        string
	Category    string
	PriceFilter string
	TimeRange   string
	SearchQuery string
	Page        int
	Limit       int
}

// CatalogClient is a typed HTTP client for the catalog API. Transient
// transport failures are retried with backoff; a success:false envelope is
// surfaced as an error so callers never see partial data.
type CatalogClient interface {
	SearchWebsites(ctx context.Context, params SearchParams) (*dto.SearchWebsitesResponse, error)
	GetRankings(ctx context.Context, params RankingParams) (*dto.GetRankingsResponse, error)
}

type catalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient creates a catalog client for the given base URL,
// e.g. "https://api.example.com".
func NewCatalogClient(baseURL string) CatalogClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetries
	rc.HTTPClient.Timeout = requestTimeout
	rc.Logger = nil

	return &catalogClient{
		baseURL:    baseURL,
		httpClient: rc.StandardClient(),
	}
}

func (c *catalogClient) SearchWebsites(ctx context.Context, params SearchParams) (*dto.SearchWebsitesResponse, error) {
	q := url.Values{}
	setIfNotEmpty(q, "q", params.Query)
	setIfNotEmpty(q, "category", params.Category)
	for _, pm := range params.PricingModels {
		q.Add("pricingModel", pm)
	}
	if params.MinQualityScore != nil {
		q.Set("minQualityScore", strconv.Itoa(*params.MinQualityScore))
	}
	setFlag(q, "isTrusted", params.IsTrusted)
	setFlag(q, "isFeatured", params.IsFeatured)
	setFlag(q, "hasFreePlan", params.HasFreePlan)
	setFlag(q, "sslEnabled", params.SSLEnabled)
	for _, tag := range params.Tags {
		q.Add("tag", tag)
	}
	setIfNotEmpty(q, "sortBy", params.SortBy)
	setIfNotEmpty(q, "sortOrder", params.SortOrder)
	setPage(q, params.Page, params.Limit)

	var result dto.SearchWebsitesResponse
	if err := c.get(ctx, "/api/search", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *catalogClient) GetRankings(ctx context.Context, params RankingParams) (*dto.GetRankingsResponse, error) {
	q := url.Values{}
	setIfNotEmpty(q, "type", params.Type)
	setIfNotEmpty(q, "category", params.Category)
	setIfNotEmpty(q, "priceFilter", params.PriceFilter)
	setIfNotEmpty(q, "timeRange", params.TimeRange)
	setIfNotEmpty(q, "searchQuery", params.SearchQuery)
	setPage(q, params.Page, params.Limit)

	var result dto.GetRankingsResponse
	if err := c.get(ctx, "/api/rankings", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// envelope is the wire-level response wrapper with the payload left raw so
// each endpoint can decode its own data shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (c *catalogClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("catalog API error on %s: %s", path, msg)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode payload from %s: %w", path, err)
	}
	return nil
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setFlag encodes the presence-truthy boolean convention: the parameter is
// only sent when the flag is on.
func setFlag(q url.Values, key string, on bool) {
	if on {
		q.Set(key, "true")
	}
}

func setPage(q url.Values, page, limit int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}
