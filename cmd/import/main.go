package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"orderscope/internal/config"
	"orderscope/internal/domain"
	"orderscope/internal/repository/postgres"
	"orderscope/internal/service"
	s3storage "orderscope/internal/storage/s3"
)

var kindFlag string

var rootCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import spreadsheet exports of invoices and sales receipts",
	Long: `Reads flat CSV or XLSX exports, reconstructs orders, line items,
customers, products and addresses, and writes them to the database.
Sources may be local paths or s3:// URIs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.Context(), args)
	},
}

func init() {
	rootCmd.Flags().StringVar(&kindFlag, "kind", "invoice", "document kind: invoice or sales_receipt")
}

func runImport(ctx context.Context, sources []string) error {
	kind := domain.DocumentKind(kindFlag)
	if kind != domain.KindInvoice && kind != domain.KindSalesReceipt {
		return fmt.Errorf("invalid kind %q: must be invoice or sales_receipt", kindFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	importSvc := service.NewImportService(
		postgres.NewOrderRepo(db),
		postgres.NewOrderItemRepo(db),
		postgres.NewCustomerRepo(db),
		postgres.NewProductRepo(db),
		postgres.NewAddressRepo(db),
		postgres.NewImportRunRepo(db),
		s3Client,
		cfg.Import,
	)

	for _, source := range sources {
		stats, err := importSvc.ImportFile(ctx, &service.ImportInput{Source: source, Kind: kind})
		if err != nil {
			return fmt.Errorf("import %s: %w", source, err)
		}
		log.Printf("%s: processed=%d orders_created=%d orders_updated=%d products_created=%d products_updated=%d warnings=%d",
			source, stats.Processed, stats.OrdersCreated, stats.OrdersUpdated,
			stats.ProductsCreated, stats.ProductsUpdated, len(stats.Warnings))
		for _, w := range stats.Warnings {
			log.Printf("  warning: %s", w)
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
