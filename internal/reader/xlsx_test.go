package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"orderscope/internal/domain"
	"orderscope/internal/importer"
	"orderscope/internal/reader"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestStreamXLSX_Basic(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Invoice No", "Customer", "Total Amount"},
		{"INV-1", "Acme Corp", "100"},
		{"INV-2", "Globex", "200"},
	})

	var rows []importer.RawRow
	count, err := reader.StreamXLSX(data, func(r importer.RawRow) {
		rows = append(rows, r)
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "Acme Corp", rows[0]["Customer"])
	assert.Equal(t, "200", rows[1]["Total Amount"])
}

func TestStreamXLSX_HeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Invoice No", "Customer"},
	})

	_, err := reader.StreamXLSX(data, func(importer.RawRow) {})
	assert.ErrorIs(t, err, domain.ErrEmptyImportFile)
}

func TestStreamXLSX_InvalidData(t *testing.T) {
	_, err := reader.StreamXLSX([]byte("not a workbook"), func(importer.RawRow) {})
	assert.Error(t, err)
}
