package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"orderscope/internal/domain"
	"orderscope/internal/port"
)

type importRunRepo struct {
	db *sqlx.DB
}

// NewImportRunRepo creates a new PostgreSQL-backed ImportRunRepository.
func NewImportRunRepo(db *sqlx.DB) port.ImportRunRepository {
	return &importRunRepo{db: db}
}

func (r *importRunRepo) Create(ctx context.Context, run *domain.ImportRun) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO import_runs (
			id, file_name, kind, processed,
			orders_created, orders_updated, products_created, products_updated,
			warnings, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		run.ID, run.FileName, run.Kind, run.Processed,
		run.OrdersCreated, run.OrdersUpdated, run.ProductsCreated, run.ProductsUpdated,
		run.Warnings, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("importRunRepo.Create: %w", err)
	}
	return nil
}

func (r *importRunRepo) List(ctx context.Context, offset, limit int) ([]domain.ImportRun, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM import_runs"); err != nil {
		return nil, 0, fmt.Errorf("importRunRepo.List count: %w", err)
	}

	var runs []domain.ImportRun
	err := r.db.SelectContext(ctx, &runs,
		"SELECT * FROM import_runs ORDER BY started_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("importRunRepo.List: %w", err)
	}
	return runs, total, nil
}
