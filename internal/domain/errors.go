package domain

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrImportRunNotFound  = errors.New("import run not found")
	ErrUnsupportedFormat  = errors.New("unsupported import file format")
	ErrEmptyImportFile    = errors.New("import file contains no data rows")
	ErrEnrichmentDisabled = errors.New("company enrichment is not configured")
)
