package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"orderscope/internal/config"
	"orderscope/internal/domain"
	"orderscope/internal/importer"
	"orderscope/internal/port"
	"orderscope/internal/reader"
)

// ImportInput identifies one export file to import.
type ImportInput struct {
	// Source is a local path or an s3://bucket/key URI.
	Source string
	Kind   domain.DocumentKind
}

// ImportService runs the reconciliation pipeline over export files.
type ImportService interface {
	ImportFile(ctx context.Context, input *ImportInput) (*importer.Stats, error)
	ImportBytes(ctx context.Context, fileName string, data []byte, kind domain.DocumentKind) (*importer.Stats, error)
	ListRuns(ctx context.Context, offset, limit int) ([]domain.ImportRun, int, error)
}

type importService struct {
	orders    port.OrderRepository
	items     port.OrderItemRepository
	customers port.CustomerRepository
	products  port.ProductRepository
	addresses port.AddressRepository
	runs      port.ImportRunRepository
	storage   port.ObjectStorage // optional; required only for s3:// sources
	cfg       config.ImportConfig
}

// NewImportService creates a new ImportService implementation.
func NewImportService(
	orderRepo port.OrderRepository,
	itemRepo port.OrderItemRepository,
	customerRepo port.CustomerRepository,
	productRepo port.ProductRepository,
	addressRepo port.AddressRepository,
	runRepo port.ImportRunRepository,
	storage port.ObjectStorage,
	cfg config.ImportConfig,
) ImportService {
	return &importService{
		orders:    orderRepo,
		items:     itemRepo,
		customers: customerRepo,
		products:  productRepo,
		addresses: addressRepo,
		runs:      runRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (s *importService) ImportFile(ctx context.Context, input *ImportInput) (*importer.Stats, error) {
	data, err := s.readSource(ctx, input.Source)
	if err != nil {
		return nil, err
	}
	return s.ImportBytes(ctx, filepath.Base(strings.TrimSuffix(input.Source, "/")), data, input.Kind)
}

func (s *importService) ImportBytes(ctx context.Context, fileName string, data []byte, kind domain.DocumentKind) (*importer.Stats, error) {
	if kind == "" {
		kind = domain.KindInvoice
	}

	pipeline := importer.NewPipeline(importer.Config{
		Kind:      kind,
		BatchSize: s.cfg.BatchSize,
		ChunkSize: s.cfg.ChunkSize,
	}, s.orders, s.items, s.customers, s.products, s.addresses)

	started := time.Now().UTC()
	log.Printf("importService.ImportBytes: importing %s (%s, %d bytes)", fileName, kind, len(data))

	ingest := func(row importer.RawRow) { pipeline.Ingest(ctx, row) }

	var rowCount int
	var err error
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		rowCount, err = reader.StreamCSV(bytes.NewReader(data), ingest)
	case ".xlsx":
		rowCount, err = reader.StreamXLSX(data, ingest)
	default:
		return nil, domain.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}

	stats := pipeline.Finalize(ctx)
	log.Printf("importService.ImportBytes: %s done: %d rows, %d documents, %d warnings",
		fileName, rowCount, stats.Processed, len(stats.Warnings))

	s.recordRun(ctx, fileName, kind, stats, started)
	return stats, nil
}

func (s *importService) ListRuns(ctx context.Context, offset, limit int) ([]domain.ImportRun, int, error) {
	return s.runs.List(ctx, offset, limit)
}

func (s *importService) readSource(ctx context.Context, source string) ([]byte, error) {
	if bucket, key, ok := splitS3URI(source); ok {
		if s.storage == nil {
			return nil, fmt.Errorf("s3 source %q: object storage not configured", source)
		}
		data, err := s.storage.Download(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("downloading %s: %w", source, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}

// recordRun persists the run for the import history. Failures are logged but
// never fail the import itself.
func (s *importService) recordRun(ctx context.Context, fileName string, kind domain.DocumentKind, stats *importer.Stats, started time.Time) {
	if s.runs == nil {
		return
	}
	warnings := []byte("[]")
	if len(stats.Warnings) > 0 {
		warnings, _ = json.Marshal(stats.Warnings)
	}
	run := &domain.ImportRun{
		ID:              uuid.New(),
		FileName:        fileName,
		Kind:            kind,
		Processed:       stats.Processed,
		OrdersCreated:   stats.OrdersCreated,
		OrdersUpdated:   stats.OrdersUpdated,
		ProductsCreated: stats.ProductsCreated,
		ProductsUpdated: stats.ProductsUpdated,
		Warnings:        string(warnings),
		StartedAt:       started,
		FinishedAt:      time.Now().UTC(),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		log.Printf("importService.recordRun: failed to record run for %s: %v", fileName, err)
	}
}

// splitS3URI splits s3://bucket/key into its parts.
func splitS3URI(source string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(source, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
