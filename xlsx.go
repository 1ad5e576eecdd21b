package bomimport

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// extractXLSX decodes the first worksheet of an XLSX workbook into a Grid.
// Additional worksheets are ignored; BOM exports keep their data on the
// first sheet.
func extractXLSX(reader io.Reader) (Grid, error) {
	// Read all data into memory (excelize requires this)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read XLSX data: %v", ErrUnreadableFile, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open XLSX: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets found in XLSX file", ErrUnreadableFile)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %s: %v", ErrUnreadableFile, sheets[0], err)
	}

	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty XLSX sheet", ErrEmptyInput)
	}
	return grid, nil
}
