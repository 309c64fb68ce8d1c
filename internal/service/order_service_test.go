package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"orderscope/internal/domain"
	"orderscope/internal/service"
	"orderscope/mocks"
)

func TestOrderService_List(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	itemRepo := new(mocks.MockOrderItemRepo)
	svc := service.NewOrderService(orderRepo, itemRepo)

	expected := []domain.Order{
		{ID: uuid.New(), OrderNumber: "INV-1"},
		{ID: uuid.New(), OrderNumber: "INV-2"},
	}
	orderRepo.On("List", mock.Anything, 0, 50).Return(expected, 2, nil)

	orders, total, err := svc.List(context.Background(), 0, 50)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, 2, total)
}

func TestOrderService_GetWithItems(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	itemRepo := new(mocks.MockOrderItemRepo)
	svc := service.NewOrderService(orderRepo, itemRepo)

	orderID := uuid.New()
	order := &domain.Order{ID: orderID, OrderNumber: "INV-1"}
	items := []domain.OrderItem{
		{ID: uuid.New(), OrderID: orderID, ProductCode: "Widget"},
	}
	orderRepo.On("GetByID", mock.Anything, orderID).Return(order, nil)
	itemRepo.On("ListByOrder", mock.Anything, orderID).Return(items, nil)

	got, err := svc.GetWithItems(context.Background(), orderID)

	assert.NoError(t, err)
	assert.Equal(t, "INV-1", got.Order.OrderNumber)
	assert.Len(t, got.Items, 1)
}

func TestOrderService_GetWithItems_NotFound(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepo)
	itemRepo := new(mocks.MockOrderItemRepo)
	svc := service.NewOrderService(orderRepo, itemRepo)

	orderID := uuid.New()
	orderRepo.On("GetByID", mock.Anything, orderID).Return(nil, domain.ErrOrderNotFound)

	got, err := svc.GetWithItems(context.Background(), orderID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	itemRepo.AssertNotCalled(t, "ListByOrder", mock.Anything, mock.Anything)
}
