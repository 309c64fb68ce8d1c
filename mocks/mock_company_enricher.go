package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderscope/internal/port"
)

// MockCompanyEnricher is a mock implementation of port.CompanyEnricher.
type MockCompanyEnricher struct {
	mock.Mock
}

func (m *MockCompanyEnricher) Enrich(ctx context.Context, companyName string) (*port.EnrichmentResult, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.EnrichmentResult), args.Error(1)
}
