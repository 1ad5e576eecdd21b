package bomimport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Grid is the unprocessed rows-of-cells view of an uploaded file, before any
// header or field interpretation. Rows may be ragged; empty cells are kept as
// empty strings so column alignment by index is preserved.
type Grid [][]string

// Extract decodes the payload into a Grid. The fileType parameter specifies
// the format and compression of the data. Only the first worksheet of an XLSX
// workbook is read; additional sheets are ignored.
//
// Extract fails with ErrEmptyInput when the payload holds zero non-blank
// rows, and with ErrUnreadableFile when the bytes cannot be decoded at all.
func Extract(reader io.Reader, fileType FileType) (grid Grid, err error) {
	if reader == nil {
		return nil, fmt.Errorf("%w: reader cannot be nil", ErrUnreadableFile)
	}

	decompressedReader, closeFunc, decompErr := newDecompressedReader(reader, fileType)
	if decompErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, decompErr)
	}
	if closeFunc != nil {
		defer func() {
			if closeErr := closeFunc(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close decompressor: %w", closeErr)
			}
		}()
	}

	switch BaseFileType(fileType) {
	case CSV:
		return extractDelimited(decompressedReader, ',', "CSV")
	case TSV:
		return extractDelimited(decompressedReader, '\t', "TSV")
	case XLSX:
		return extractXLSX(decompressedReader)
	case Parquet:
		return extractParquet(decompressedReader)
	default:
		return nil, fmt.Errorf("%w: unsupported file type", ErrUnreadableFile)
	}
}

// extractDelimited decodes CSV or TSV text into a Grid. The csv.Reader is the
// quoting state machine: a quoted field keeps literal delimiters, and a
// doubled quote inside a quoted field yields one literal quote character.
func extractDelimited(reader io.Reader, delimiter rune, fileTypeName string) (Grid, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrUnreadableFile, fileTypeName, err)
	}

	// Strip a UTF-8 BOM; spreadsheet tools routinely prepend one.
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	csvReader := csv.NewReader(bytes.NewReader(content))
	csvReader.Comma = delimiter
	csvReader.FieldsPerRecord = -1 // ragged rows are legitimate
	csvReader.LazyQuotes = true

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrUnreadableFile, fileTypeName, err)
	}

	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty %s data", ErrEmptyInput, fileTypeName)
	}
	return grid, nil
}

// isBlankRow reports whether every cell is empty or whitespace.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// nonEmptyCells counts cells with non-whitespace content.
func nonEmptyCells(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

// cellAt returns the trimmed cell at index i, or "" when the row is shorter.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
