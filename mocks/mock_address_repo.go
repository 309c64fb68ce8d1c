package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"orderscope/internal/domain"
)

// MockAddressRepo is a mock implementation of port.AddressRepository.
type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) FindOrCreate(ctx context.Context, addr *domain.Address) (*domain.Address, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
