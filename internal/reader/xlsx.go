package reader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"orderscope/internal/domain"
	"orderscope/internal/importer"
)

// StreamXLSX reads the first sheet of an XLSX export and feeds each data row
// to fn as a RawRow keyed by the sheet's header row. Returns the number of
// data rows streamed.
func StreamXLSX(data []byte, fn func(importer.RawRow)) (int, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, domain.ErrEmptyImportFile
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	defer rows.Close()

	var header []string
	count := 0
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return count, fmt.Errorf("reading row %d: %w", count+2, err)
		}
		if header == nil {
			for i := range record {
				record[i] = strings.TrimSpace(record[i])
			}
			header = record
			continue
		}
		row := make(importer.RawRow, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			}
		}
		fn(row)
		count++
	}
	if err := rows.Error(); err != nil {
		return count, fmt.Errorf("iterating rows: %w", err)
	}
	if count == 0 {
		return 0, domain.ErrEmptyImportFile
	}
	return count, nil
}
