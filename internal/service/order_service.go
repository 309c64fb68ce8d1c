package service

import (
	"context"

	"github.com/google/uuid"

	"orderscope/internal/domain"
	"orderscope/internal/port"
)

// OrderWithItems bundles an order with its line items for read endpoints.
type OrderWithItems struct {
	Order domain.Order       `json:"order"`
	Items []domain.OrderItem `json:"items"`
}

// OrderService provides read access to reconciled orders.
type OrderService interface {
	List(ctx context.Context, offset, limit int) ([]domain.Order, int, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*OrderWithItems, error)
}

type orderService struct {
	orders port.OrderRepository
	items  port.OrderItemRepository
}

// NewOrderService creates a new OrderService implementation.
func NewOrderService(orderRepo port.OrderRepository, itemRepo port.OrderItemRepository) OrderService {
	return &orderService{orders: orderRepo, items: itemRepo}
}

func (s *orderService) List(ctx context.Context, offset, limit int) ([]domain.Order, int, error) {
	return s.orders.List(ctx, offset, limit)
}

func (s *orderService) GetWithItems(ctx context.Context, id uuid.UUID) (*OrderWithItems, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderWithItems{Order: *order, Items: items}, nil
}
