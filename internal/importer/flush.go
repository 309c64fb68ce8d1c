package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderscope/internal/domain"
)

// syntheticLines are product/service values that describe order-level
// adjustments rather than sellable items. They contribute to totals through
// the primary row but never become line items of their own.
var syntheticLines = map[string]struct{}{
	"shipping":     {},
	"tax":          {},
	"sales tax":    {},
	"handling":     {},
	"handling fee": {},
	"discount":     {},
	"subtotal":     {},
}

func isSyntheticLine(code string) bool {
	_, ok := syntheticLines[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

var hundred = decimal.NewFromInt(100)

// flushDocument persists one complete document: address and customer
// resolution, order reconciliation, replace-all line items, and per-item
// product upserts. Key problems on the primary row (missing customer name)
// are recorded as warnings and drop the document without error; any returned
// error is a persistence fault and the document has not been fully written.
func (p *Pipeline) flushDocument(ctx context.Context, doc *document) error {
	primary := doc.primaryRow()

	customerName := primary.CustomerName()
	if customerName == "" {
		p.stats.warnf("%s %s: Missing Customer Name", p.cfg.Kind.Label(), doc.key)
		return nil
	}

	billingID, err := p.resolveAddress(ctx, primary.BillingAddress())
	if err != nil {
		return fmt.Errorf("resolving billing address: %w", err)
	}
	shippingID, err := p.resolveAddress(ctx, primary.ShippingAddress())
	if err != nil {
		return fmt.Errorf("resolving shipping address: %w", err)
	}

	customer, err := p.resolveCustomer(ctx, customerName)
	if err != nil {
		return fmt.Errorf("resolving customer %q: %w", customerName, err)
	}

	order, err := p.reconcileOrder(ctx, doc, primary, customer.ID, billingID, shippingID)
	if err != nil {
		return err
	}

	if err := p.replaceLineItems(ctx, doc, order.ID); err != nil {
		return err
	}

	p.stats.Processed++
	return nil
}

// resolveAddress finds or creates the address, returning nil when every
// field is blank.
func (p *Pipeline) resolveAddress(ctx context.Context, addr *domain.Address) (*uuid.UUID, error) {
	if addr.IsEmpty() {
		return nil, nil
	}
	saved, err := p.addresses.FindOrCreate(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &saved.ID, nil
}

// resolveCustomer finds a customer by exact name, creating one with a
// synthetic external id on first sighting. Existing customers are never
// updated or merged.
func (p *Pipeline) resolveCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	customer, err := p.customers.GetByName(ctx, name)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}
	customer = &domain.Customer{
		ID:         uuid.New(),
		ExternalID: "cust-" + uuid.NewString(),
		Name:       name,
		IsActive:   true,
	}
	if err := p.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// reconcileOrder locates an existing order by external id or document number
// and updates it in place, or inserts a new one.
func (p *Pipeline) reconcileOrder(
	ctx context.Context,
	doc *document,
	primary RawRow,
	customerID uuid.UUID,
	billingID, shippingID *uuid.UUID,
) (*domain.Order, error) {
	total, _ := primary.TotalAmount()
	tax := primary.TotalTax()
	subtotal := total.Sub(tax)

	taxPercent := decimal.Zero
	if tax.IsPositive() && subtotal.IsPositive() {
		taxPercent = tax.Div(subtotal).Mul(hundred).Round(4)
	}

	existing, err := p.orders.FindByNaturalKey(ctx, primary.ExternalID(), doc.key)
	if err != nil && !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, fmt.Errorf("looking up order: %w", err)
	}

	order := existing
	if order == nil {
		order = &domain.Order{ID: uuid.New()}
	}

	order.ExternalID = primary.ExternalID()
	order.OrderNumber = doc.key
	order.Kind = p.cfg.Kind
	order.CustomerID = customerID
	order.BillingAddressID = billingID
	order.ShippingAddressID = shippingID
	order.OrderDate = primary.OrderDate()
	order.DueDate = primary.DueDate()
	order.ShipDate = primary.ShipDate()
	order.Subtotal = subtotal
	order.TaxAmount = tax
	order.TotalAmount = total
	order.TaxPercent = taxPercent
	order.Status = orderStatus(primary)
	order.PaymentStatus = paymentStatus(primary)
	order.PaymentMethod = primary.PaymentMethod()
	order.Terms = primary.Terms()
	order.Memo = primary.OrderMemo()

	if existing != nil {
		if err := p.orders.Update(ctx, order); err != nil {
			return nil, fmt.Errorf("updating order: %w", err)
		}
		p.stats.OrdersUpdated++
		return order, nil
	}
	if err := p.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	p.stats.OrdersCreated++
	return order, nil
}

// replaceLineItems deletes every existing line item of the order, then
// parses and bulk-inserts the surviving rows in bounded chunks, upserting
// each referenced product along the way.
func (p *Pipeline) replaceLineItems(ctx context.Context, doc *document, orderID uuid.UUID) error {
	if err := p.items.DeleteByOrder(ctx, orderID); err != nil {
		return fmt.Errorf("clearing line items: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(doc.rows))
	for _, row := range doc.rows {
		code := row.ProductCode()
		if code == "" || isSyntheticLine(code) {
			continue
		}
		if err := p.upsertProduct(ctx, code, row.Description()); err != nil {
			return fmt.Errorf("upserting product %q: %w", code, err)
		}
		items = append(items, domain.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductCode: code,
			Description: row.Description(),
			Quantity:    row.Quantity(),
			UnitPrice:   row.UnitPrice(),
			Amount:      row.Amount(),
			ServiceDate: row.ServiceDate(),
		})
	}

	for start := 0; start < len(items); start += p.cfg.ChunkSize {
		end := start + p.cfg.ChunkSize
		if end > len(items) {
			end = len(items)
		}
		if err := p.items.CreateBatch(ctx, items[start:end]); err != nil {
			return fmt.Errorf("inserting line items: %w", err)
		}
		p.yield()
	}
	return nil
}

// upsertProduct creates or refreshes the product behind a line item,
// incrementing exactly one of the created/updated counters.
func (p *Pipeline) upsertProduct(ctx context.Context, code, description string) error {
	_, err := p.products.GetByCode(ctx, code)
	exists := err == nil
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return err
	}

	name := description
	if name == "" {
		name = code
	}
	product := &domain.Product{
		ID:          uuid.New(),
		Code:        code,
		Name:        name,
		Description: description,
	}
	if err := p.products.Upsert(ctx, product); err != nil {
		return err
	}
	if exists {
		p.stats.ProductsUpdated++
	} else {
		p.stats.ProductsCreated++
	}
	return nil
}

func orderStatus(primary RawRow) domain.OrderStatus {
	switch strings.ToLower(primary.Field("Status")) {
	case "closed", "paid":
		return domain.OrderStatusClosed
	case "voided", "void":
		return domain.OrderStatusVoided
	default:
		return domain.OrderStatusOpen
	}
}

func paymentStatus(primary RawRow) domain.PaymentStatus {
	switch strings.ToLower(primary.Field("Payment Status", "Paid")) {
	case "paid", "yes":
		return domain.PaymentStatusPaid
	case "partial", "partially paid":
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusUnpaid
	}
}
