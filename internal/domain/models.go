package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a buyer reconstructed from imported documents.
// The natural key is the exact customer name.
type Customer struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ExternalID string    `db:"external_id" json:"external_id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Product represents a catalog entry keyed by product code.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Address is a normalized postal address derived from the raw address-line
// fields of a totals row. Lines beyond the first are merged into Line2.
type Address struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Line1      string    `db:"line1" json:"line1"`
	Line2      string    `db:"line2" json:"line2"`
	City       string    `db:"city" json:"city"`
	State      string    `db:"state" json:"state"`
	PostalCode string    `db:"postal_code" json:"postal_code"`
	Country    string    `db:"country" json:"country"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// IsEmpty reports whether every address field is blank.
func (a *Address) IsEmpty() bool {
	return a.Line1 == "" && a.Line2 == "" && a.City == "" &&
		a.State == "" && a.PostalCode == "" && a.Country == ""
}

// Order is the normalized persistent record for one imported document.
// Natural keys: ExternalID and OrderNumber — either is sufficient to locate
// an existing row on re-import.
type Order struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	ExternalID        string          `db:"external_id" json:"external_id"`
	OrderNumber       string          `db:"order_number" json:"order_number"`
	Kind              DocumentKind    `db:"kind" json:"kind"`
	CustomerID        uuid.UUID       `db:"customer_id" json:"customer_id"`
	BillingAddressID  *uuid.UUID      `db:"billing_address_id" json:"billing_address_id"`
	ShippingAddressID *uuid.UUID      `db:"shipping_address_id" json:"shipping_address_id"`
	OrderDate         *time.Time      `db:"order_date" json:"order_date"`
	DueDate           *time.Time      `db:"due_date" json:"due_date"`
	ShipDate          *time.Time      `db:"ship_date" json:"ship_date"`
	Subtotal          decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxAmount         decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	TotalAmount       decimal.Decimal `db:"total_amount" json:"total_amount"`
	TaxPercent        decimal.Decimal `db:"tax_percent" json:"tax_percent"`
	Status            OrderStatus     `db:"status" json:"status"`
	PaymentStatus     PaymentStatus   `db:"payment_status" json:"payment_status"`
	PaymentMethod     string          `db:"payment_method" json:"payment_method"`
	Terms             string          `db:"terms" json:"terms"`
	Memo              string          `db:"memo" json:"memo"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// OrderItem is a single line item exclusively owned by one Order. The full
// set is replaced on every import of its order.
type OrderItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	OrderID     uuid.UUID       `db:"order_id" json:"order_id"`
	ProductCode string          `db:"product_code" json:"product_code"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	ServiceDate *time.Time      `db:"service_date" json:"service_date"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// ImportRun records one execution of the import pipeline for the dashboard's
// import history.
type ImportRun struct {
	ID              uuid.UUID    `db:"id" json:"id"`
	FileName        string       `db:"file_name" json:"file_name"`
	Kind            DocumentKind `db:"kind" json:"kind"`
	Processed       int          `db:"processed" json:"processed"`
	OrdersCreated   int          `db:"orders_created" json:"orders_created"`
	OrdersUpdated   int          `db:"orders_updated" json:"orders_updated"`
	ProductsCreated int          `db:"products_created" json:"products_created"`
	ProductsUpdated int          `db:"products_updated" json:"products_updated"`
	Warnings        string       `db:"warnings" json:"warnings"`
	StartedAt       time.Time    `db:"started_at" json:"started_at"`
	FinishedAt      time.Time    `db:"finished_at" json:"finished_at"`
}
