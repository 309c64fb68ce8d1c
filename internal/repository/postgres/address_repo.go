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

type addressRepo struct {
	db *sqlx.DB
}

// NewAddressRepo creates a new PostgreSQL-backed AddressRepository.
func NewAddressRepo(db *sqlx.DB) port.AddressRepository {
	return &addressRepo{db: db}
}

// FindOrCreate returns an existing address with identical fields, inserting
// one if none exists. Field-exact matching is the dedup strategy.
func (r *addressRepo) FindOrCreate(ctx context.Context, addr *domain.Address) (*domain.Address, error) {
	var existing domain.Address
	err := r.db.GetContext(ctx, &existing,
		`SELECT * FROM addresses
		 WHERE line1 = $1 AND line2 = $2 AND city = $3
		   AND state = $4 AND postal_code = $5 AND country = $6`,
		addr.Line1, addr.Line2, addr.City, addr.State, addr.PostalCode, addr.Country)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("addressRepo.FindOrCreate lookup: %w", err)
	}

	addr.ID = uuid.New()
	addr.CreatedAt = time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO addresses (id, line1, line2, city, state, postal_code, country, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		addr.ID, addr.Line1, addr.Line2, addr.City, addr.State,
		addr.PostalCode, addr.Country, addr.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("addressRepo.FindOrCreate insert: %w", err)
	}
	return addr, nil
}

func (r *addressRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	var addr domain.Address
	err := r.db.GetContext(ctx, &addr, "SELECT * FROM addresses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("addressRepo.GetByID: %w", err)
	}
	return &addr, nil
}
