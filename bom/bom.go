// Package bom bridges the import pipeline with bill-of-materials documents.
//
// A [Template] is the unit the surrounding application stores and edits: a
// named, versioned collection of [bomimport.Line] records. The package covers
// the lifecycle around an import — folding freshly imported lines into a
// template, checking the result against inventory stock, and writing the
// template back out as XLSX or CSV.
//
// Template merging never mutates its receiver; Merge deep-copies first so a
// caller's document is unchanged if it decides to discard the merge result.
package bom

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"

	"github.com/Cannasol-Tech/bomimport"
)

// Template lifecycle statuses.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Availability statuses reported by CheckAvailability.
const (
	AvailabilityAvailable   = "Available"
	AvailabilityPartial     = "Partial"
	AvailabilityUnavailable = "Unavailable"
)

// Template is a named, versioned BOM document.
type Template struct {
	// ID is the stable template identifier.
	ID string
	// Name is the human-readable template name.
	Name string
	// Description is an optional free-form summary.
	Description string
	// Version defaults to "1.0" for new templates.
	Version string
	// Status is one of the Status* constants.
	Status string
	// Lines holds the BOM line records, one per distinct part number.
	Lines []bomimport.Line
	// CreatedAt and UpdatedAt track document lifecycle.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTemplate creates a draft template with a generated ID.
func NewTemplate(name, description string) *Template {
	now := time.Now().UTC()
	return &Template{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Version:     "1.0",
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TotalEstimatedCost returns the sum of the lines' extended costs. It is
// always derived, never stored.
func (t *Template) TotalEstimatedCost() float64 {
	var total float64
	for _, line := range t.Lines {
		total += line.ExtendedCost
	}
	return total
}

// Merge folds imported lines into the template and returns the merged copy.
// A line whose part number already exists in the template has its quantity
// added to the existing line (extended cost re-derived); new part numbers
// are appended in import order. The receiver is never modified.
func (t *Template) Merge(lines []bomimport.Line) (*Template, error) {
	var merged Template
	if err := deepcopy.Copy(&merged, t); err != nil {
		return nil, fmt.Errorf("failed to copy template: %w", err)
	}

	index := make(map[string]int, len(merged.Lines))
	for i, line := range merged.Lines {
		index[line.PartNumber] = i
	}

	for _, line := range lines {
		if i, ok := index[line.PartNumber]; ok {
			existing := &merged.Lines[i]
			existing.Quantity += line.Quantity
			existing.ExtendedCost = float64(existing.Quantity) * existing.UnitCost
			continue
		}
		index[line.PartNumber] = len(merged.Lines)
		merged.Lines = append(merged.Lines, line)
	}

	merged.UpdatedAt = time.Now().UTC()
	return &merged, nil
}

// InventoryItem is the stock view of a part, as maintained by the inventory
// side of the application.
type InventoryItem struct {
	PartNumber    string
	ComponentName string
	CurrentStock  int
	MinStock      int
	UnitCost      float64
	Supplier      string
	Category      string
}

// AvailabilityCheck reports whether inventory can cover one BOM line.
type AvailabilityCheck struct {
	PartNumber         string
	Description        string
	QuantityRequired   int
	CurrentStock       int
	AvailableQuantity  int
	Shortage           int
	AvailabilityStatus string
}

// CheckAvailability compares every template line against inventory stock.
// Parts absent from inventory report zero stock. Results are in line order.
func CheckAvailability(t *Template, inventory []InventoryItem) []AvailabilityCheck {
	stock := make(map[string]int, len(inventory))
	for _, item := range inventory {
		stock[item.PartNumber] = item.CurrentStock
	}

	checks := make([]AvailabilityCheck, 0, len(t.Lines))
	for _, line := range t.Lines {
		current := stock[line.PartNumber]
		available := min(current, line.Quantity)
		shortage := max(0, line.Quantity-current)

		status := AvailabilityAvailable
		switch {
		case available == 0 && line.Quantity > 0:
			status = AvailabilityUnavailable
		case shortage > 0:
			status = AvailabilityPartial
		}

		checks = append(checks, AvailabilityCheck{
			PartNumber:         line.PartNumber,
			Description:        line.Description,
			QuantityRequired:   line.Quantity,
			CurrentStock:       current,
			AvailableQuantity:  available,
			Shortage:           shortage,
			AvailabilityStatus: status,
		})
	}
	return checks
}
