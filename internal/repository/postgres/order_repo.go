package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"orderscope/internal/domain"
	"orderscope/internal/port"
)

type orderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new PostgreSQL-backed OrderRepository.
func NewOrderRepo(db *sqlx.DB) port.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `INSERT INTO orders (
		id, external_id, order_number, kind, customer_id,
		billing_address_id, shipping_address_id,
		order_date, due_date, ship_date,
		subtotal, tax_amount, total_amount, tax_percent,
		status, payment_status, payment_method, terms, memo,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7,
		$8, $9, $10,
		$11, $12, $13, $14,
		$15, $16, $17, $18, $19,
		$20, $21
	)`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.ExternalID, order.OrderNumber, order.Kind, order.CustomerID,
		order.BillingAddressID, order.ShippingAddressID,
		order.OrderDate, order.DueDate, order.ShipDate,
		order.Subtotal, order.TaxAmount, order.TotalAmount, order.TaxPercent,
		order.Status, order.PaymentStatus, order.PaymentMethod, order.Terms, order.Memo,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("orderRepo.Create: %w", err)
	}
	return nil
}

func (r *orderRepo) Update(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET
			external_id = $1, order_number = $2, kind = $3, customer_id = $4,
			billing_address_id = $5, shipping_address_id = $6,
			order_date = $7, due_date = $8, ship_date = $9,
			subtotal = $10, tax_amount = $11, total_amount = $12, tax_percent = $13,
			status = $14, payment_status = $15, payment_method = $16,
			terms = $17, memo = $18, updated_at = $19
		 WHERE id = $20`,
		order.ExternalID, order.OrderNumber, order.Kind, order.CustomerID,
		order.BillingAddressID, order.ShippingAddressID,
		order.OrderDate, order.DueDate, order.ShipDate,
		order.Subtotal, order.TaxAmount, order.TotalAmount, order.TaxPercent,
		order.Status, order.PaymentStatus, order.PaymentMethod,
		order.Terms, order.Memo, order.UpdatedAt,
		order.ID)
	if err != nil {
		return fmt.Errorf("orderRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("orderRepo.GetByID: %w", err)
	}
	return &order, nil
}

func (r *orderRepo) FindByNaturalKey(ctx context.Context, externalID, orderNumber string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order,
		`SELECT * FROM orders
		 WHERE ($1 <> '' AND external_id = $1) OR ($2 <> '' AND order_number = $2)
		 LIMIT 1`,
		externalID, orderNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("orderRepo.FindByNaturalKey: %w", err)
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, offset, limit int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM orders"); err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List count: %w", err)
	}

	var orders []domain.Order
	err := r.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders ORDER BY order_date DESC NULLS LAST, created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List: %w", err)
	}
	return orders, total, nil
}
