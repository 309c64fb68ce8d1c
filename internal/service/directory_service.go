package service

import (
	"context"

	"orderscope/internal/domain"
	"orderscope/internal/port"
)

// DirectoryService provides read access to the master data reconstructed by
// imports: customers and products.
type DirectoryService interface {
	ListCustomers(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
	ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int, error)
}

type directoryService struct {
	customers port.CustomerRepository
	products  port.ProductRepository
}

// NewDirectoryService creates a new DirectoryService implementation.
func NewDirectoryService(customerRepo port.CustomerRepository, productRepo port.ProductRepository) DirectoryService {
	return &directoryService{customers: customerRepo, products: productRepo}
}

func (s *directoryService) ListCustomers(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	return s.customers.List(ctx, offset, limit)
}

func (s *directoryService) ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int, error) {
	return s.products.List(ctx, offset, limit)
}
