package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"orderscope/internal/config"
	"orderscope/internal/port"
)

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a CompanyEnricher backed by the enrichment HTTP service.
func NewClient(cfg *config.EnrichmentConfig) port.CompanyEnricher {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) Enrich(ctx context.Context, companyName string) (*port.EnrichmentResult, error) {
	endpoint := fmt.Sprintf("%s/v1/companies/lookup?name=%s", c.baseURL, url.QueryEscape(companyName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("enrichment request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrichment service returned %d", resp.StatusCode)
	}

	var result port.EnrichmentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding enrichment response: %w", err)
	}
	return &result, nil
}
