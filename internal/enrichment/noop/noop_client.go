package noop

import (
	"context"
	"log"

	"orderscope/internal/port"
)

type noopClient struct{}

// NewClient creates a CompanyEnricher that returns empty results. Used when
// no enrichment service is configured.
func NewClient() port.CompanyEnricher {
	return &noopClient{}
}

func (c *noopClient) Enrich(ctx context.Context, companyName string) (*port.EnrichmentResult, error) {
	log.Printf("noopEnricher.Enrich: skipping lookup for %q (no enrichment service configured)", companyName)
	return &port.EnrichmentResult{Name: companyName}, nil
}
