package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"orderscope/internal/config"
	"orderscope/internal/domain"
	"orderscope/internal/service"
	"orderscope/mocks"
)

type importMocks struct {
	orders    *mocks.MockOrderRepo
	items     *mocks.MockOrderItemRepo
	customers *mocks.MockCustomerRepo
	products  *mocks.MockProductRepo
	addresses *mocks.MockAddressRepo
	runs      *mocks.MockImportRunRepo
	storage   *mocks.MockObjectStorage
}

func newImportService(t *testing.T) (service.ImportService, *importMocks) {
	t.Helper()
	m := &importMocks{
		orders:    new(mocks.MockOrderRepo),
		items:     new(mocks.MockOrderItemRepo),
		customers: new(mocks.MockCustomerRepo),
		products:  new(mocks.MockProductRepo),
		addresses: new(mocks.MockAddressRepo),
		runs:      new(mocks.MockImportRunRepo),
		storage:   new(mocks.MockObjectStorage),
	}
	svc := service.NewImportService(
		m.orders, m.items, m.customers, m.products, m.addresses,
		m.runs, m.storage, config.ImportConfig{BatchSize: 100, ChunkSize: 200},
	)
	return svc, m
}

func (m *importMocks) expectFreshSave() {
	m.customers.On("GetByName", mock.Anything, mock.AnythingOfType("string")).Return(nil, domain.ErrCustomerNotFound)
	m.customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)
	m.orders.On("FindByNaturalKey", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrOrderNotFound)
	m.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	m.items.On("DeleteByOrder", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)
	m.products.On("GetByCode", mock.Anything, mock.AnythingOfType("string")).Return(nil, domain.ErrProductNotFound)
	m.products.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
	m.items.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]domain.OrderItem")).Return(nil)
}

const sampleCSV = `Invoice No,Customer,Product/Service,Qty,Rate,Amount,Total Amount,Total Tax
INV-1,,Widget,2,50,100,,
INV-1,Acme Corp,,,,,110,10
`

func TestImportService_ImportBytes_CSV(t *testing.T) {
	svc, m := newImportService(t)
	m.expectFreshSave()

	var recorded domain.ImportRun
	m.runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
		Run(func(args mock.Arguments) { recorded = *args.Get(1).(*domain.ImportRun) }).
		Return(nil)

	stats, err := svc.ImportBytes(context.Background(), "invoices.csv", []byte(sampleCSV), domain.KindInvoice)

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 1, stats.OrdersCreated)
	assert.Empty(t, stats.Warnings)

	assert.Equal(t, "invoices.csv", recorded.FileName)
	assert.Equal(t, domain.KindInvoice, recorded.Kind)
	assert.Equal(t, 1, recorded.Processed)
	assert.Equal(t, "[]", recorded.Warnings)
	m.runs.AssertExpectations(t)
}

func TestImportService_ImportBytes_UnsupportedFormat(t *testing.T) {
	svc, _ := newImportService(t)

	_, err := svc.ImportBytes(context.Background(), "report.pdf", []byte("%PDF"), domain.KindInvoice)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestImportService_ImportBytes_EmptyFile(t *testing.T) {
	svc, _ := newImportService(t)

	_, err := svc.ImportBytes(context.Background(), "empty.csv", nil, domain.KindInvoice)
	assert.ErrorIs(t, err, domain.ErrEmptyImportFile)
}

func TestImportService_ImportBytes_RunRecordFailureIsNonFatal(t *testing.T) {
	svc, m := newImportService(t)
	m.expectFreshSave()
	m.runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.ImportRun")).Return(assert.AnError)

	stats, err := svc.ImportBytes(context.Background(), "invoices.csv", []byte(sampleCSV), domain.KindInvoice)

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Processed)
}

func TestImportService_ImportFile_S3Source(t *testing.T) {
	svc, m := newImportService(t)
	m.expectFreshSave()
	m.runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.ImportRun")).Return(nil)
	m.storage.On("Download", mock.Anything, "exports", "2025/invoices.csv").Return([]byte(sampleCSV), nil)

	stats, err := svc.ImportFile(context.Background(), &service.ImportInput{
		Source: "s3://exports/2025/invoices.csv",
		Kind:   domain.KindInvoice,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Processed)
	m.storage.AssertExpectations(t)
}

func TestImportService_ImportFile_S3DownloadError(t *testing.T) {
	svc, m := newImportService(t)
	m.storage.On("Download", mock.Anything, "exports", "missing.csv").Return(nil, assert.AnError)

	_, err := svc.ImportFile(context.Background(), &service.ImportInput{
		Source: "s3://exports/missing.csv",
		Kind:   domain.KindInvoice,
	})
	assert.Error(t, err)
}

func TestImportService_ListRuns(t *testing.T) {
	svc, m := newImportService(t)
	expected := []domain.ImportRun{{FileName: "a.csv"}, {FileName: "b.csv"}}
	m.runs.On("List", mock.Anything, 0, 50).Return(expected, 2, nil)

	runs, total, err := svc.ListRuns(context.Background(), 0, 50)

	assert.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, 2, total)
}
