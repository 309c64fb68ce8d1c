package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderscope/internal/domain"
)

// MockDirectoryService is a mock implementation of service.DirectoryService.
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListCustomers(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Int(1), args.Error(2)
}

func (m *MockDirectoryService) ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}
