package bomimport

import (
	"fmt"

	"github.com/google/uuid"
)

// CategoryOther is the sentinel category assigned when a row has no mapped
// category and no keyword inference applies.
const CategoryOther = "Other"

// Line is one fully-typed, defaulted BOM line record produced by the import
// pipeline. Lines are immutable from the pipeline's point of view; ownership
// transfers to the caller on return.
type Line struct {
	// PartNumber is the source part number, or a generated placeholder that
	// is unique within the imported batch.
	PartNumber string
	// Description is the required, non-empty component description.
	Description string
	// Category is the mapped or inferred category, CategoryOther otherwise.
	Category string
	// Quantity is a non-negative count, defaulted to 1 on parse failure.
	Quantity int
	// UnitCost is a non-negative decimal, defaulted to 0 on parse failure.
	UnitCost float64
	// ExtendedCost is always Quantity * UnitCost, never independently stored.
	ExtendedCost float64
	// Supplier is the source supplier name, empty when unmapped.
	Supplier string
	// DigikeyPartNumber is the optional DigiKey catalog number.
	DigikeyPartNumber string
}

// categoryRules maps inferred categories to description keywords, checked in
// order. Inference is best effort and never overrides an explicit, non-empty
// mapped category value.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"Resistors", []string{"resistor", "ohm", "potentiometer", "thermistor"}},
	{"Capacitors", []string{"capacitor", "farad"}},
	{"Inductors", []string{"inductor", "ferrite", "choke"}},
	{"Semiconductors", []string{"diode", "transistor", "mosfet", "led", "rectifier"}},
	{"Integrated Circuits", []string{"microcontroller", "mcu", "op-amp", "opamp", "regulator", "amplifier", "processor"}},
	{"Connectors", []string{"connector", "header", "socket", "terminal", "jack", "plug"}},
	{"Electromechanical", []string{"relay", "switch", "motor", "fan", "solenoid"}},
	{"Hardware", []string{"screw", "bolt", "nut", "washer", "standoff", "bracket", "enclosure"}},
	{"PCB", []string{"pcb", "circuit board"}},
	{"Cables & Wiring", []string{"cable", "wire", "harness"}},
}

// inferCategory guesses a category from description keywords. Returns the
// empty string when no rule matches.
func inferCategory(description string) string {
	for _, rule := range categoryRules {
		if matchesKeyword(description, rule.keywords) {
			return rule.category
		}
	}
	return ""
}

// Normalize walks every grid row strictly below the header row and emits one
// Line per row carrying usable data. All-empty rows, spanning section-divider
// rows, and rows without description text are skipped; numeric cells that
// fail to parse are silently defaulted rather than rejected.
//
// Normalize fails with ErrNoUsableRows when zero rows survive.
func Normalize(grid Grid, header Header, h Heuristics) ([]Line, error) {
	indexes := make(map[Field]int, len(header.Mapping))
	for _, f := range Fields() {
		indexes[f] = -1
		if name, ok := header.Mapping[f]; ok {
			indexes[f] = columnIndex(header.Columns, name)
		}
	}

	// Batch token for placeholder part numbers; row index keeps each
	// placeholder unique within the batch.
	batch := uuid.NewString()[:8]

	var lines []Line
	for i := header.RowIndex + 1; i < len(grid); i++ {
		row := grid[i]
		if isBlankRow(row) || isSpanningTitleRow(row, h) {
			continue
		}

		fieldValue := func(f Field) string {
			return cellAt(row, indexes[f])
		}

		description := fieldValue(FieldDescription)
		if description == "" {
			// A synthetic description would be worse than no row at all.
			continue
		}

		partNumber := fieldValue(FieldPartNumber)
		if partNumber == "" {
			partNumber = fmt.Sprintf("PN-%s-%04d", batch, i)
		}

		category := fieldValue(FieldCategory)
		if category == "" {
			category = inferCategory(description)
		}
		if category == "" {
			category = CategoryOther
		}

		quantity := coerceQuantity(fieldValue(FieldQuantity))
		unitCost := coerceUnitCost(fieldValue(FieldUnitCost))

		lines = append(lines, Line{
			PartNumber:        partNumber,
			Description:       description,
			Category:          category,
			Quantity:          quantity,
			UnitCost:          unitCost,
			ExtendedCost:      float64(quantity) * unitCost,
			Supplier:          fieldValue(FieldSupplier),
			DigikeyPartNumber: fieldValue(FieldDigikeyPartNumber),
		})
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: every row below header %d was skipped", ErrNoUsableRows, header.RowIndex)
	}
	return lines, nil
}
