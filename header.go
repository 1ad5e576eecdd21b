package bomimport

import (
	"fmt"
	"strings"
)

// Field identifies a semantic BOM column the importer can populate.
type Field string

// The fixed set of semantic fields a FieldMapping can target. Description is
// the only field that must be mapped for an import to proceed.
const (
	FieldPartNumber        Field = "partNumber"
	FieldDescription       Field = "description"
	FieldCategory          Field = "category"
	FieldQuantity          Field = "quantity"
	FieldUnitCost          Field = "unitCost"
	FieldSupplier          Field = "supplier"
	FieldDigikeyPartNumber Field = "digikeyPartNumber"
)

// Fields returns all semantic field keys in canonical order.
func Fields() []Field {
	return []Field{
		FieldPartNumber,
		FieldDescription,
		FieldCategory,
		FieldQuantity,
		FieldUnitCost,
		FieldSupplier,
		FieldDigikeyPartNumber,
	}
}

// FieldMapping maps semantic field keys to a source column name. A field
// absent from the map is unmapped. Column names are matched against header
// cells case-insensitively.
type FieldMapping map[Field]string

// Header is the outcome of header resolution: which grid row holds the column
// names, the names themselves, and the field mapping built from them.
type Header struct {
	// RowIndex is the index of the chosen header row within the Grid.
	RowIndex int
	// Columns contains the trimmed header cell values in column order.
	Columns []string
	// Mapping is the resolved field-to-column-name correspondence.
	Mapping FieldMapping
}

// Heuristics holds the scoring weights and limits used by header resolution
// and row normalization. Tests can construct boundary configurations; callers
// normally use DefaultHeuristics.
type Heuristics struct {
	// MaxHeaderScanRows limits how many leading rows are considered as
	// header candidates. Deeper title blocks are out of scope.
	MaxHeaderScanRows int
	// NonEmptyCellWeight is awarded per non-empty cell in a candidate row.
	NonEmptyCellWeight int
	// KeywordCellWeight is awarded per cell containing a header keyword.
	KeywordCellWeight int
	// DistinctValuesBonus is awarded when the non-empty cells are not all
	// identical, ruling out repeated-filler rows.
	DistinctValuesBonus int
	// WidthBonus is awarded when the non-empty cell count falls within
	// [WidthBonusMin, WidthBonusMax].
	WidthBonus    int
	WidthBonusMin int
	WidthBonusMax int
	// TitleRowMaxCells and TitleRowMinRunes define the spanning-title
	// pattern: a row with at most TitleRowMaxCells non-empty cells whose
	// first cell is longer than TitleRowMinRunes is a merged-cell title,
	// not tabular data.
	TitleRowMaxCells int
	TitleRowMinRunes int
}

// DefaultHeuristics returns the heuristic configuration tuned for real-world
// spreadsheet exports.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		MaxHeaderScanRows:   5,
		NonEmptyCellWeight:  2,
		KeywordCellWeight:   5,
		DistinctValuesBonus: 3,
		WidthBonus:          5,
		WidthBonusMin:       2,
		WidthBonusMax:       20,
		TitleRowMaxCells:    2,
		TitleRowMinRunes:    10,
	}
}

// headerKeywords is the scoring vocabulary: substrings whose presence in a
// cell suggests the row is a column-header row. It covers every column kind
// in the field-mapping target set.
var headerKeywords = []string{
	"part",
	"number",
	"description",
	"desc",
	"component",
	"item",
	"quantity",
	"qty",
	"cost",
	"price",
	"unit",
	"supplier",
	"vendor",
	"manufacturer",
	"mpn",
	"category",
	"type",
	"stock",
	"digikey",
}

// fieldExactNames returns the column names treated as an exact
// (case-insensitive) match for the given field.
func fieldExactNames(f Field) []string {
	switch f {
	case FieldPartNumber:
		return []string{"part number", "partnumber", "part_number", "part #", "pn", "part no"}
	case FieldDescription:
		return []string{"description", "component name", "desc"}
	case FieldCategory:
		return []string{"category", "type"}
	case FieldQuantity:
		return []string{"quantity", "qty"}
	case FieldUnitCost:
		return []string{"unit cost", "unit price", "cost", "price"}
	case FieldSupplier:
		return []string{"supplier", "vendor", "company"}
	case FieldDigikeyPartNumber:
		return []string{"digikey pn", "digikey part number", "digi-key part number", "digikey_pn"}
	default:
		return nil
	}
}

// fieldKeywords returns the substring fallback vocabulary for the given
// field, used when no column name matches exactly.
func fieldKeywords(f Field) []string {
	switch f {
	case FieldPartNumber:
		return []string{"part", "p/n", "mpn", "item"}
	case FieldDescription:
		return []string{"desc", "component", "name", "detail"}
	case FieldCategory:
		return []string{"categ", "type", "class", "group"}
	case FieldQuantity:
		return []string{"qty", "quant", "stock", "count", "amount"}
	case FieldUnitCost:
		return []string{"cost", "price", "rate"}
	case FieldSupplier:
		return []string{"supplier", "vendor", "manuf", "company", "source"}
	case FieldDigikeyPartNumber:
		return []string{"digikey", "digi-key"}
	default:
		return nil
	}
}

// mappingOrder is the field order used when claiming columns. DigiKey part
// numbers are claimed before generic part numbers so that a lone "DigiKey
// Part Number" column is not stolen by the "part" keyword.
var mappingOrder = []Field{
	FieldDescription,
	FieldQuantity,
	FieldUnitCost,
	FieldDigikeyPartNumber,
	FieldPartNumber,
	FieldCategory,
	FieldSupplier,
}

// headerCandidate is a scored guess at which grid row is the header row.
type headerCandidate struct {
	rowIndex int
	score    int
	columns  []string
}

// ResolveHeader identifies the true column-header row within the grid and
// builds the automatic FieldMapping from its cell values.
//
// When the description field cannot be mapped, ResolveHeader returns the
// resolved Header together with ErrRequiredFieldUnmapped so a caller can
// present the discovered columns in a manual-mapping dialog.
func ResolveHeader(grid Grid, h Heuristics) (Header, error) {
	best := headerCandidate{rowIndex: -1, score: 0}

	limit := min(len(grid), h.MaxHeaderScanRows)
	for i := range limit {
		row := grid[i]
		if isSpanningTitleRow(row, h) {
			continue
		}
		score := scoreHeaderRow(row, h)
		if score > best.score {
			best = headerCandidate{rowIndex: i, score: score, columns: trimmedColumns(row)}
		}
	}

	if best.rowIndex < 0 || best.score == 0 {
		return Header{}, fmt.Errorf("%w: no row within the first %d scored as a header", ErrNoHeaderFound, limit)
	}

	header := Header{
		RowIndex: best.rowIndex,
		Columns:  best.columns,
		Mapping:  mapFields(best.columns),
	}
	if _, ok := header.Mapping[FieldDescription]; !ok {
		return header, fmt.Errorf("%w: columns %v", ErrRequiredFieldUnmapped, header.Columns)
	}
	return header, nil
}

// scoreHeaderRow computes the heuristic header score for a single row.
func scoreHeaderRow(row []string, h Heuristics) int {
	score := 0
	var values []string
	for _, cell := range row {
		v := strings.TrimSpace(cell)
		if v == "" {
			continue
		}
		values = append(values, v)
		score += h.NonEmptyCellWeight
		if containsHeaderKeyword(v) {
			score += h.KeywordCellWeight
		}
	}

	if !allIdentical(values) {
		score += h.DistinctValuesBonus
	}
	if len(values) >= h.WidthBonusMin && len(values) <= h.WidthBonusMax {
		score += h.WidthBonus
	}
	return score
}

// containsHeaderKeyword reports whether the cell text contains any entry of
// the scoring vocabulary, case-insensitively.
func containsHeaderKeyword(cell string) bool {
	lower := strings.ToLower(cell)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// allIdentical reports whether every value equals the first. A list of zero
// or one values is trivially identical.
func allIdentical(values []string) bool {
	if len(values) <= 1 {
		return true
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// isSpanningTitleRow detects the merged-cell title pattern exported by
// spreadsheet tools: very few non-empty cells, with a long first cell.
func isSpanningTitleRow(row []string, h Heuristics) bool {
	if nonEmptyCells(row) > h.TitleRowMaxCells {
		return false
	}
	return len([]rune(cellAt(row, 0))) > h.TitleRowMinRunes
}

// trimmedColumns returns the row's cells with surrounding whitespace removed.
func trimmedColumns(row []string) []string {
	columns := make([]string, len(row))
	for i, cell := range row {
		columns[i] = strings.TrimSpace(cell)
	}
	return columns
}

// mapFields builds the automatic FieldMapping for a header row: an exact
// case-insensitive pass over all fields first, then a substring-keyword pass
// for whatever remains. A column claimed by one field is not offered to the
// next.
func mapFields(columns []string) FieldMapping {
	mapping := make(FieldMapping, len(mappingOrder))
	claimed := make(map[int]bool, len(columns))

	for _, f := range mappingOrder {
		for i, col := range columns {
			if claimed[i] || col == "" {
				continue
			}
			if matchesExactly(col, fieldExactNames(f)) {
				mapping[f] = col
				claimed[i] = true
				break
			}
		}
	}

	for _, f := range mappingOrder {
		if _, ok := mapping[f]; ok {
			continue
		}
		// Keyword order is priority order: "desc" beats "name" for the
		// description field even when a name-ish column comes first.
		for _, kw := range fieldKeywords(f) {
			matched := false
			for i, col := range columns {
				if claimed[i] || col == "" {
					continue
				}
				if strings.Contains(strings.ToLower(col), kw) {
					mapping[f] = col
					claimed[i] = true
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}
	return mapping
}

// matchesExactly reports a case-insensitive exact match against any name.
func matchesExactly(column string, names []string) bool {
	lower := strings.ToLower(column)
	for _, name := range names {
		if lower == name {
			return true
		}
	}
	return false
}

// matchesKeyword reports a case-insensitive substring match against any
// keyword.
func matchesKeyword(column string, keywords []string) bool {
	lower := strings.ToLower(column)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// columnIndex resolves a mapped column name back to its position within the
// header row. Returns -1 when the name is not present.
func columnIndex(columns []string, name string) int {
	for i, col := range columns {
		if strings.EqualFold(col, name) {
			return i
		}
	}
	return -1
}
