package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderscope/internal/domain"
)

// MockImportRunRepo is a mock implementation of port.ImportRunRepository.
type MockImportRunRepo struct {
	mock.Mock
}

func (m *MockImportRunRepo) Create(ctx context.Context, run *domain.ImportRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockImportRunRepo) List(ctx context.Context, offset, limit int) ([]domain.ImportRun, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ImportRun), args.Int(1), args.Error(2)
}
