package port

import (
	"context"

	"github.com/google/uuid"

	"orderscope/internal/domain"
)

// OrderRepository defines the contract for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// FindByNaturalKey returns the first order whose external id or order
	// number matches; either key alone is sufficient.
	FindByNaturalKey(ctx context.Context, externalID, orderNumber string) (*domain.Order, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int, error)
}

// OrderItemRepository defines the contract for line item persistence.
// Line items are replace-all: callers delete by order before re-inserting.
type OrderItemRepository interface {
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
	CreateBatch(ctx context.Context, items []domain.OrderItem) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByName(ctx context.Context, name string) (*domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
}

// ProductRepository defines the contract for product persistence.
type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, offset, limit int) ([]domain.Product, int, error)
}

// AddressRepository defines the contract for address persistence. Dedup
// strategy is the repository's concern; the import pipeline only asks for a
// reference.
type AddressRepository interface {
	FindOrCreate(ctx context.Context, addr *domain.Address) (*domain.Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error)
}

// ImportRunRepository defines the contract for import run history.
type ImportRunRepository interface {
	Create(ctx context.Context, run *domain.ImportRun) error
	List(ctx context.Context, offset, limit int) ([]domain.ImportRun, int, error)
}
