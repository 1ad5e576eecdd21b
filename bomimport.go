// Package bomimport turns uploaded spreadsheet and CSV payloads into
// normalized bill-of-materials line records. It supports CSV, TSV, XLSX, and
// Parquet files, with optional compression (gzip, bzip2, xz, zstd).
//
// The pipeline has three stages, composed top to bottom:
//
//  1. Raw extraction ([Extract]) decodes the payload into a [Grid] of string
//     cells, dropping blank rows but preserving column alignment.
//  2. Header resolution ([ResolveHeader]) scores the leading rows to find the
//     true column-header row — real exports carry title rows, merged cells,
//     and spacer rows above the headers — and maps column names onto the
//     semantic BOM fields.
//  3. Row normalization ([Normalize]) coerces each data row into a [Line],
//     defaulting unparseable numeric cells and skipping rows that carry no
//     usable data.
//
// [Import] runs all three stages; [ImportWithMapping] accepts an explicit
// [FieldMapping] for spreadsheets whose headers defeat the automatic match.
//
// # Memory Considerations
//
// All parsing loads the entire payload into memory. This is intentional for
// simplicity and for formats that require random access (Parquet, XLSX), but
// it means very large exports should be split before importing.
//
// # Example usage
//
//	f, _ := os.Open("inventory.xlsx")
//	defer f.Close()
//	result, err := bomimport.Import(f, bomimport.XLSX)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range result.Lines {
//	    fmt.Println(line.PartNumber, line.Description, line.ExtendedCost)
//	}
//
// # Failure conditions
//
// The typed errors [ErrEmptyInput], [ErrUnreadableFile], [ErrNoHeaderFound],
// [ErrRequiredFieldUnmapped], and [ErrNoUsableRows] describe every way an
// import can fail; match them with errors.Is. Per-row numeric problems are
// never errors — hand-maintained spreadsheets are expected to be messy, and
// the importer favors graceful degradation over rejection.
package bomimport

import (
	"fmt"
	"io"
)

// Result is the outcome of a completed import.
type Result struct {
	// Lines contains one normalized record per usable data row, in source
	// order.
	Lines []Line
	// HeaderRow is the grid index of the chosen header row.
	HeaderRow int
	// Mapping is the field mapping the normalization ran with.
	Mapping FieldMapping
	// Skipped counts the data rows below the header that were dropped as
	// blank, as section dividers, or for missing descriptions.
	Skipped int
}

// Import runs the full pipeline with default heuristics: extraction, header
// resolution, and row normalization.
func Import(reader io.Reader, fileType FileType) (*Result, error) {
	return ImportWithHeuristics(reader, fileType, DefaultHeuristics())
}

// ImportWithHeuristics runs the full pipeline with a caller-supplied
// heuristic configuration.
func ImportWithHeuristics(reader io.Reader, fileType FileType, h Heuristics) (*Result, error) {
	grid, err := Extract(reader, fileType)
	if err != nil {
		return nil, err
	}

	header, err := ResolveHeader(grid, h)
	if err != nil {
		return nil, err
	}

	return normalizeResult(grid, header, h)
}

// ImportWithMapping runs the pipeline with an explicit field mapping instead
// of the automatic one, for callers whose users resolved the mapping by hand.
// The header row is located by the mapped description column name; the
// mapping must map FieldDescription.
func ImportWithMapping(reader io.Reader, fileType FileType, mapping FieldMapping) (*Result, error) {
	descColumn, ok := mapping[FieldDescription]
	if !ok || descColumn == "" {
		return nil, fmt.Errorf("%w: explicit mapping must include the description column", ErrRequiredFieldUnmapped)
	}

	grid, err := Extract(reader, fileType)
	if err != nil {
		return nil, err
	}

	h := DefaultHeuristics()
	header, err := locateHeaderRow(grid, descColumn, h)
	if err != nil {
		return nil, err
	}
	header.Mapping = mapping

	return normalizeResult(grid, header, h)
}

// locateHeaderRow finds the first row within the scan window containing the
// given column name. Used by the manual-mapping path, where the caller has
// already told us which column is which.
func locateHeaderRow(grid Grid, columnName string, h Heuristics) (Header, error) {
	limit := min(len(grid), h.MaxHeaderScanRows)
	for i := range limit {
		columns := trimmedColumns(grid[i])
		if columnIndex(columns, columnName) >= 0 {
			return Header{RowIndex: i, Columns: columns}, nil
		}
	}
	return Header{}, fmt.Errorf("%w: no row within the first %d contains column %q", ErrNoHeaderFound, limit, columnName)
}

// normalizeResult runs row normalization and assembles the Result.
func normalizeResult(grid Grid, header Header, h Heuristics) (*Result, error) {
	lines, err := Normalize(grid, header, h)
	if err != nil {
		return nil, err
	}

	return &Result{
		Lines:     lines,
		HeaderRow: header.RowIndex,
		Mapping:   header.Mapping,
		Skipped:   len(grid) - header.RowIndex - 1 - len(lines),
	}, nil
}
