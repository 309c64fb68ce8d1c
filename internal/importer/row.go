package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"orderscope/internal/domain"
)

// RawRow is one record of a flat export, keyed by column header. Values are
// kept as the raw cell strings; all typing happens through the accessors
// below.
type RawRow map[string]string

// Field returns the first non-blank value among the named columns.
func (r RawRow) Field(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(r[n]); v != "" {
			return v
		}
	}
	return ""
}

// DocumentNumber extracts the document key for the given export schema.
func (r RawRow) DocumentNumber(kind domain.DocumentKind) string {
	if kind == domain.KindSalesReceipt {
		return r.Field("Sales Receipt No", "Num", "Doc Num")
	}
	return r.Field("Invoice No", "Num", "Doc Num")
}

func (r RawRow) ExternalID() string {
	return r.Field("Transaction ID", "External ID", "Txn ID")
}

func (r RawRow) CustomerName() string {
	return r.Field("Customer", "Customer Name", "Name")
}

// TotalAmount parses the order-level total. The boolean is false when the
// column is blank or unparseable; only the totals row carries a value.
func (r RawRow) TotalAmount() (decimal.Decimal, bool) {
	return ParseDecimal(r.Field("Total Amount", "Total"))
}

func (r RawRow) TotalTax() decimal.Decimal {
	tax, _ := ParseDecimal(r.Field("Total Tax", "Tax Amount"))
	return tax
}

func (r RawRow) ProductCode() string {
	return r.Field("Product/Service", "Item", "Product")
}

func (r RawRow) Description() string {
	return r.Field("Memo/Description", "Description", "Memo")
}

func (r RawRow) Quantity() decimal.Decimal {
	qty, _ := ParseDecimal(r.Field("Qty", "Quantity"))
	return qty
}

func (r RawRow) UnitPrice() decimal.Decimal {
	rate, _ := ParseDecimal(r.Field("Rate", "Unit Price", "Sales Price"))
	return rate
}

func (r RawRow) Amount() decimal.Decimal {
	amt, _ := ParseDecimal(r.Field("Amount", "Line Amount"))
	return amt
}

func (r RawRow) OrderDate() *time.Time {
	return ParseDate(r.Field("Date", "Order Date", "Invoice Date"))
}

func (r RawRow) DueDate() *time.Time     { return ParseDate(r.Field("Due Date")) }
func (r RawRow) ShipDate() *time.Time    { return ParseDate(r.Field("Ship Date")) }
func (r RawRow) ServiceDate() *time.Time { return ParseDate(r.Field("Service Date")) }

func (r RawRow) PaymentMethod() string { return r.Field("Payment Method") }
func (r RawRow) Terms() string         { return r.Field("Terms") }
func (r RawRow) OrderMemo() string     { return r.Field("Memo", "Message") }

// BillingAddress assembles the billing address fragments of a totals row.
// Address lines 2 through 5 are merged into a single secondary line.
func (r RawRow) BillingAddress() *domain.Address {
	return r.address("Billing Address")
}

// ShippingAddress assembles the shipping address fragments of a totals row.
func (r RawRow) ShippingAddress() *domain.Address {
	return r.address("Shipping Address")
}

func (r RawRow) address(prefix string) *domain.Address {
	var extra []string
	for _, suffix := range []string{" Line 2", " Line 3", " Line 4", " Line 5"} {
		if v := strings.TrimSpace(r[prefix+suffix]); v != "" {
			extra = append(extra, v)
		}
	}
	short := strings.TrimSuffix(prefix, " Address") // "Billing" / "Shipping"
	return &domain.Address{
		Line1:      r.Field(prefix+" Line 1", prefix),
		Line2:      strings.Join(extra, ", "),
		City:       r.Field(short + " City"),
		State:      r.Field(short+" State", short+" Province"),
		PostalCode: r.Field(short+" ZIP", short+" Postal Code"),
		Country:    r.Field(short + " Country"),
	}
}

// dateLayouts covers the formats seen across spreadsheet exports.
var dateLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"01-02-2006",
	"1/2/2006",
	"01/02/06",
	time.RFC3339,
}

// ParseDate parses a cell into a UTC date, returning nil for blank or
// unrecognized values.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseDecimal parses a money or quantity cell. It tolerates currency
// symbols, thousands separators, and accounting-style parenthesised
// negatives. The boolean is false for blank or unparseable cells.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(strings.TrimLeft(s, "$€£"))
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}
