package importer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"orderscope/internal/domain"
	"orderscope/internal/importer"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1250.50", "1250.50", true},
		{"$1,250.50", "1250.50", true},
		{"€99.99", "99.99", true},
		{"(45.00)", "-45.00", true},
		{" 10 ", "10", true},
		{"", "0", false},
		{"n/a", "0", false},
	}
	for _, tc := range cases {
		got, ok := importer.ParseDecimal(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "input %q: got %s", tc.in, got)
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"01/15/2025", "2025-01-15", "01-15-2025", "1/15/2025"} {
		got := importer.ParseDate(in)
		if assert.NotNil(t, got, "input %q", in) {
			assert.Equal(t, 2025, got.Year())
			assert.Equal(t, 15, got.Day())
		}
	}

	assert.Nil(t, importer.ParseDate(""))
	assert.Nil(t, importer.ParseDate("not a date"))
}

func TestRawRow_Field_FirstNonBlankWins(t *testing.T) {
	row := importer.RawRow{"Total": "  ", "Total Amount": "42"}
	assert.Equal(t, "42", row.Field("Total Amount", "Total"))
	assert.Equal(t, "", row.Field("Missing", "Also Missing"))
}

func TestRawRow_DocumentNumber_ByKind(t *testing.T) {
	row := importer.RawRow{"Invoice No": "INV-1", "Sales Receipt No": "SR-1", "Num": "N-1"}
	assert.Equal(t, "INV-1", row.DocumentNumber(domain.KindInvoice))
	assert.Equal(t, "SR-1", row.DocumentNumber(domain.KindSalesReceipt))

	fallback := importer.RawRow{"Num": "N-2"}
	assert.Equal(t, "N-2", fallback.DocumentNumber(domain.KindInvoice))
}

func TestRawRow_BillingAddress_MergesExtraLines(t *testing.T) {
	row := importer.RawRow{
		"Billing Address Line 1": "1 Main St",
		"Billing Address Line 2": "Suite 4",
		"Billing Address Line 3": "Attn: Accounts",
		"Billing City":           "Springfield",
		"Billing State":          "IL",
		"Billing ZIP":            "62701",
		"Billing Country":        "USA",
	}
	addr := row.BillingAddress()
	assert.Equal(t, "1 Main St", addr.Line1)
	assert.Equal(t, "Suite 4, Attn: Accounts", addr.Line2)
	assert.Equal(t, "Springfield", addr.City)
	assert.Equal(t, "IL", addr.State)
	assert.Equal(t, "62701", addr.PostalCode)
	assert.Equal(t, "USA", addr.Country)
	assert.False(t, addr.IsEmpty())
}

func TestRawRow_ShippingAddress_EmptyWhenAbsent(t *testing.T) {
	row := importer.RawRow{"Billing City": "Springfield"}
	assert.True(t, row.ShippingAddress().IsEmpty())
}

func TestRawRow_TotalAmount_OnlyOnTotalsRow(t *testing.T) {
	line := importer.RawRow{"Amount": "99.50"}
	_, ok := line.TotalAmount()
	assert.False(t, ok)

	totals := importer.RawRow{"Total Amount": "99.50"}
	got, ok := totals.TotalAmount()
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("99.50")))
}
