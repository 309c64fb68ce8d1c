package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderscope/internal/port"
)

// MockCompanyService is a mock implementation of service.CompanyService.
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) Lookup(ctx context.Context, name string) (*port.EnrichmentResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.EnrichmentResult), args.Error(1)
}
