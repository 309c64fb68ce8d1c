package main

import (
	"fmt"
	"log"

	"orderscope/internal/config"
	"orderscope/internal/enrichment/httpclient"
	"orderscope/internal/enrichment/noop"
	"orderscope/internal/handler"
	"orderscope/internal/port"
	"orderscope/internal/repository/postgres"
	"orderscope/internal/router"
	"orderscope/internal/service"
	s3storage "orderscope/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	orderRepo := postgres.NewOrderRepo(db)
	itemRepo := postgres.NewOrderItemRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	productRepo := postgres.NewProductRepo(db)
	addressRepo := postgres.NewAddressRepo(db)
	runRepo := postgres.NewImportRunRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Company enrichment is optional; run with a noop client when unconfigured.
	var enricher port.CompanyEnricher
	if cfg.Enrichment.BaseURL != "" {
		enricher = httpclient.NewClient(&cfg.Enrichment)
	} else {
		enricher = noop.NewClient()
	}

	// Initialize services
	importSvc := service.NewImportService(orderRepo, itemRepo, customerRepo, productRepo, addressRepo, runRepo, s3Client, cfg.Import)
	orderSvc := service.NewOrderService(orderRepo, itemRepo)
	directorySvc := service.NewDirectoryService(customerRepo, productRepo)
	companySvc := service.NewCompanyService(enricher)

	// Initialize handlers
	importH := handler.NewImportHandler(importSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	directoryH := handler.NewDirectoryHandler(directorySvc)
	companyH := handler.NewCompanyHandler(companySvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, importH, orderH, directoryH, companyH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
