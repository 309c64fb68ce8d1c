package importer

import (
	"context"
	"log"

	"orderscope/internal/domain"
	"orderscope/internal/port"
)

const (
	// DefaultBatchSize is the pending-map size that triggers a sweep of all
	// complete documents.
	DefaultBatchSize = 100
	// DefaultChunkSize bounds how many line items are bulk-inserted per call.
	DefaultChunkSize = 200
)

// Config holds pipeline tuning knobs.
type Config struct {
	Kind      domain.DocumentKind
	BatchSize int
	ChunkSize int
	// Yield is an advisory hook invoked between persisted chunks and between
	// flushed documents. It may be nil.
	Yield func()
}

// document is one pending group of raw rows sharing a document key.
type document struct {
	key    string
	rows   []RawRow
	totals int // rows seen with a positive total amount
}

func (d *document) complete() bool { return d.totals == 1 }

// primaryRow returns the single totals row, the source of all order-level
// fields. Only valid for complete documents.
func (d *document) primaryRow() RawRow {
	for _, row := range d.rows {
		if total, ok := row.TotalAmount(); ok && total.IsPositive() {
			return row
		}
	}
	return nil
}

// Pipeline reconstructs normalized orders from flat, denormalized export
// rows. Rows are grouped by document key; a document becomes complete when
// its totals row arrives, and complete documents are persisted at document
// boundaries, on batch-threshold sweeps, and at Finalize. Incomplete or
// ambiguous documents are discarded with a warning and never partially
// written.
//
// A Pipeline instance is single-threaded: the caller feeds rows one at a
// time and every persistence call runs synchronously on that feed.
type Pipeline struct {
	cfg       Config
	orders    port.OrderRepository
	items     port.OrderItemRepository
	customers port.CustomerRepository
	products  port.ProductRepository
	addresses port.AddressRepository

	pending map[string]*document
	keys    []string // insertion order of pending keys
	stats   Stats
}

// NewPipeline creates a Pipeline for one import run. Zero config values fall
// back to the package defaults.
func NewPipeline(
	cfg Config,
	orderRepo port.OrderRepository,
	itemRepo port.OrderItemRepository,
	customerRepo port.CustomerRepository,
	productRepo port.ProductRepository,
	addressRepo port.AddressRepository,
) *Pipeline {
	if cfg.Kind == "" {
		cfg.Kind = domain.KindInvoice
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	return &Pipeline{
		cfg:       cfg,
		orders:    orderRepo,
		items:     itemRepo,
		customers: customerRepo,
		products:  productRepo,
		addresses: addressRepo,
		pending:   make(map[string]*document),
	}
}

// Ingest feeds one raw row into the pipeline. Expected validation failures
// (missing keys, ambiguous totals) become warnings on the run stats;
// persistence failures during triggered flushes become per-document warnings.
// Neither aborts the run.
func (p *Pipeline) Ingest(ctx context.Context, row RawRow) {
	defer p.releaseOnPanic()

	key := row.DocumentNumber(p.cfg.Kind)
	if key == "" {
		p.stats.warn("Missing Document Number")
		return
	}

	doc, ok := p.pending[key]
	if !ok {
		doc = &document{key: key}
		p.pending[key] = doc
		p.keys = append(p.keys, key)
	}
	doc.rows = append(doc.rows, row)

	if total, ok := row.TotalAmount(); ok && total.IsPositive() {
		doc.totals++
		if doc.totals > 1 {
			p.stats.warnf("%s %s: Multiple rows have total amounts", p.cfg.Kind.Label(), key)
			p.remove(key)
			return
		}
	}

	// Rows for one document arrive contiguously, so a row for a new key
	// means every other complete document has seen its full row set.
	p.flushComplete(ctx, key)

	if len(p.pending) >= p.cfg.BatchSize {
		p.flushComplete(ctx, "")
	}
}

// Finalize flushes every remaining complete document, then discards each
// still-incomplete document with one warning. It returns the run stats.
func (p *Pipeline) Finalize(ctx context.Context) *Stats {
	defer p.releaseOnPanic()

	p.flushComplete(ctx, "")

	for _, key := range append([]string(nil), p.keys...) {
		doc, ok := p.pending[key]
		if !ok {
			continue
		}
		p.stats.warnf("%s %s: No row has a total amount", p.cfg.Kind.Label(), doc.key)
		p.remove(key)
	}
	return &p.stats
}

// Stats returns the accumulated run statistics.
func (p *Pipeline) Stats() *Stats { return &p.stats }

// PendingCount reports how many documents are still accumulating rows.
func (p *Pipeline) PendingCount() int { return len(p.pending) }

// flushComplete persists every complete pending document except the one
// identified by skip. A persistence failure discards only that document,
// with a warning naming it; remaining documents still flush.
func (p *Pipeline) flushComplete(ctx context.Context, skip string) {
	for _, key := range append([]string(nil), p.keys...) {
		if key == skip {
			continue
		}
		doc, ok := p.pending[key]
		if !ok || !doc.complete() {
			continue
		}
		if err := p.flushDocument(ctx, doc); err != nil {
			log.Printf("pipeline.flushComplete: %s %s: %v", p.cfg.Kind.Label(), key, err)
			p.stats.warnf("%s %s: failed to save: %v", p.cfg.Kind.Label(), key, err)
		}
		p.remove(key)
		p.yield()
	}
}

func (p *Pipeline) remove(key string) {
	delete(p.pending, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

func (p *Pipeline) yield() {
	if p.cfg.Yield != nil {
		p.cfg.Yield()
	}
}

// releaseOnPanic drops all pending documents before re-raising, so a caller
// retrying with a fresh pipeline never sees stale partial groups.
func (p *Pipeline) releaseOnPanic() {
	if r := recover(); r != nil {
		p.pending = make(map[string]*document)
		p.keys = p.keys[:0]
		panic(r)
	}
}
