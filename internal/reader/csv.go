package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"orderscope/internal/domain"
	"orderscope/internal/importer"
)

// bom is the UTF-8 byte order mark Excel prepends to CSV exports on Windows.
var bom = []byte{0xEF, 0xBB, 0xBF}

// StreamCSV reads a flat CSV export and feeds each data row to fn as a
// RawRow keyed by the header row. Short records simply omit their trailing
// columns; RawRow treats absent keys as blank. Returns the number of data
// rows streamed.
func StreamCSV(r io.Reader, fn func(importer.RawRow)) (int, error) {
	buffered := newBOMStripper(r)

	cr := csv.NewReader(buffered)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, domain.ErrEmptyImportFile
		}
		return 0, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	count := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("reading row %d: %w", count+2, err)
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
	if count == 0 {
		return 0, domain.ErrEmptyImportFile
	}
	return count, nil
}

// newBOMStripper removes a leading UTF-8 BOM if present.
func newBOMStripper(r io.Reader) io.Reader {
	head := make([]byte, len(bom))
	n, _ := io.ReadFull(r, head)
	head = head[:n]
	if bytes.Equal(head, bom) {
		return r
	}
	return io.MultiReader(bytes.NewReader(head), r)
}
