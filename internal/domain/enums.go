package domain

// DocumentKind identifies the flat-export schema a document was imported from.
type DocumentKind string

const (
	KindInvoice      DocumentKind = "invoice"
	KindSalesReceipt DocumentKind = "sales_receipt"
)

// Label returns the human-readable prefix used in import warnings.
func (k DocumentKind) Label() string {
	if k == KindSalesReceipt {
		return "Receipt"
	}
	return "Invoice"
}

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
	OrderStatusVoided OrderStatus = "voided"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)
