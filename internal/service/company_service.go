package service

import (
	"context"

	"orderscope/internal/domain"
	"orderscope/internal/port"
)

// CompanyService proxies lookups to the external company-enrichment service.
type CompanyService interface {
	Lookup(ctx context.Context, name string) (*port.EnrichmentResult, error)
}

type companyService struct {
	enricher port.CompanyEnricher
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(enricher port.CompanyEnricher) CompanyService {
	return &companyService{enricher: enricher}
}

func (s *companyService) Lookup(ctx context.Context, name string) (*port.EnrichmentResult, error) {
	if s.enricher == nil {
		return nil, domain.ErrEnrichmentDisabled
	}
	return s.enricher.Enrich(ctx, name)
}
