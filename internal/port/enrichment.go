package port

import "context"

// EnrichmentResult is the payload returned by the company-enrichment service.
// The service is a black box; fields beyond these are ignored.
type EnrichmentResult struct {
	Name      string `json:"name"`
	Domain    string `json:"domain"`
	Industry  string `json:"industry"`
	Employees int    `json:"employees"`
}

// CompanyEnricher abstracts the third-party company-enrichment HTTP service.
type CompanyEnricher interface {
	Enrich(ctx context.Context, companyName string) (*EnrichmentResult, error)
}
