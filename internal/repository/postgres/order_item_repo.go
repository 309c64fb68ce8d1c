package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"orderscope/internal/domain"
	"orderscope/internal/port"
)

type orderItemRepo struct {
	db *sqlx.DB
}

// NewOrderItemRepo creates a new PostgreSQL-backed OrderItemRepository.
func NewOrderItemRepo(db *sqlx.DB) port.OrderItemRepository {
	return &orderItemRepo{db: db}
}

func (r *orderItemRepo) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		return fmt.Errorf("orderItemRepo.DeleteByOrder: %w", err)
	}
	return nil
}

func (r *orderItemRepo) CreateBatch(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range items {
		items[i].CreatedAt = now
	}

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO order_items (
			id, order_id, product_code, description,
			quantity, unit_price, amount, service_date, created_at
		) VALUES (
			:id, :order_id, :product_code, :description,
			:quantity, :unit_price, :amount, :service_date, :created_at
		)`, items)
	if err != nil {
		return fmt.Errorf("orderItemRepo.CreateBatch: %w", err)
	}
	return nil
}

func (r *orderItemRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM order_items WHERE order_id = $1 ORDER BY created_at, product_code",
		orderID)
	if err != nil {
		return nil, fmt.Errorf("orderItemRepo.ListByOrder: %w", err)
	}
	return items, nil
}
