package bom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// exportColumns is the header row written by both exporters. The names are
// exact matches for the importer's field mapping, so an exported template
// re-imports without manual mapping.
var exportColumns = []string{
	"Part Number",
	"Description",
	"Category",
	"Quantity",
	"Unit Cost",
	"Extended Cost",
	"Supplier",
	"DigiKey PN",
}

// WriteXLSX writes the template as a single-sheet XLSX workbook: one header
// row, one row per line, and a trailing total row.
func WriteXLSX(w io.Writer, t *Template) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, line := range t.Lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []any{
			line.PartNumber,
			line.Description,
			line.Category,
			line.Quantity,
			line.UnitCost,
			line.ExtendedCost,
			line.Supplier,
			line.DigikeyPartNumber,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write line %d: %w", i, err)
		}
	}

	// Total row sits below a spacer; the importer skips both on re-import.
	totalCell, err := excelize.CoordinatesToCellName(1, len(t.Lines)+3)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	totalRow := []any{"Total Estimated Cost", "", "", "", "", t.TotalEstimatedCost()}
	if err := f.SetSheetRow(sheet, totalCell, &totalRow); err != nil {
		return fmt.Errorf("failed to write total row: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the template as CSV with the same column set as WriteXLSX,
// without the total row. Quoting is handled by encoding/csv, so supplier
// names containing commas survive a round trip.
func WriteCSV(w io.Writer, t *Template) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, line := range t.Lines {
		record := []string{
			line.PartNumber,
			line.Description,
			line.Category,
			strconv.Itoa(line.Quantity),
			strconv.FormatFloat(line.UnitCost, 'f', -1, 64),
			strconv.FormatFloat(line.ExtendedCost, 'f', -1, 64),
			line.Supplier,
			line.DigikeyPartNumber,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write line %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
