package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orderscope/internal/domain"
	"orderscope/internal/importer"
	"orderscope/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportFile(ctx context.Context, input *service.ImportInput) (*importer.Stats, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importer.Stats), args.Error(1)
}

func (m *MockImportService) ImportBytes(ctx context.Context, fileName string, data []byte, kind domain.DocumentKind) (*importer.Stats, error) {
	args := m.Called(ctx, fileName, data, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importer.Stats), args.Error(1)
}

func (m *MockImportService) ListRuns(ctx context.Context, offset, limit int) ([]domain.ImportRun, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ImportRun), args.Int(1), args.Error(2)
}
