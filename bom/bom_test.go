package bom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cannasol-Tech/bomimport"
)

func TestNewTemplate(t *testing.T) {
	t.Parallel()

	t.Run("creates a draft with a generated ID and default version", func(t *testing.T) {
		t.Parallel()

		tmpl := NewTemplate("Reflow Oven", "Controller board build")

		assert.NotEmpty(t, tmpl.ID)
		assert.Equal(t, "Reflow Oven", tmpl.Name)
		assert.Equal(t, "Controller board build", tmpl.Description)
		assert.Equal(t, "1.0", tmpl.Version)
		assert.Equal(t, StatusDraft, tmpl.Status)
		assert.Empty(t, tmpl.Lines)
		assert.False(t, tmpl.CreatedAt.IsZero())
		assert.Equal(t, tmpl.CreatedAt, tmpl.UpdatedAt)
	})

	t.Run("generates distinct IDs", func(t *testing.T) {
		t.Parallel()

		first := NewTemplate("A", "")
		second := NewTemplate("B", "")

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestTemplate_TotalEstimatedCost(t *testing.T) {
	t.Parallel()

	t.Run("sums the extended costs of all lines", func(t *testing.T) {
		t.Parallel()

		tmpl := &Template{
			Lines: []bomimport.Line{
				{PartNumber: "R001", Quantity: 100, UnitCost: 0.12, ExtendedCost: 12.00},
				{PartNumber: "C001", Quantity: 50, UnitCost: 0.08, ExtendedCost: 4.00},
			},
		}

		assert.InDelta(t, 16.00, tmpl.TotalEstimatedCost(), 1e-9)
	})

	t.Run("is zero for an empty template", func(t *testing.T) {
		t.Parallel()

		tmpl := NewTemplate("Empty", "")

		assert.Zero(t, tmpl.TotalEstimatedCost())
	})
}

func TestTemplate_Merge(t *testing.T) {
	t.Parallel()

	t.Run("sums quantities for duplicate part numbers", func(t *testing.T) {
		t.Parallel()

		tmpl := &Template{
			ID: "tmpl-1",
			Lines: []bomimport.Line{
				{PartNumber: "R001", Description: "10K Resistor", Quantity: 100, UnitCost: 0.12, ExtendedCost: 12.00},
			},
		}

		merged, err := tmpl.Merge([]bomimport.Line{
			{PartNumber: "R001", Description: "10K Resistor", Quantity: 50, UnitCost: 0.12, ExtendedCost: 6.00},
		})
		require.NoError(t, err)

		require.Len(t, merged.Lines, 1)
		assert.Equal(t, 150, merged.Lines[0].Quantity)
		assert.InDelta(t, 18.00, merged.Lines[0].ExtendedCost, 1e-9)
	})

	t.Run("appends new part numbers in import order", func(t *testing.T) {
		t.Parallel()

		tmpl := &Template{
			Lines: []bomimport.Line{
				{PartNumber: "R001", Quantity: 100, UnitCost: 0.12},
			},
		}

		merged, err := tmpl.Merge([]bomimport.Line{
			{PartNumber: "C001", Quantity: 50, UnitCost: 0.08},
			{PartNumber: "U001", Quantity: 2, UnitCost: 3.40},
		})
		require.NoError(t, err)

		require.Len(t, merged.Lines, 3)
		assert.Equal(t, "R001", merged.Lines[0].PartNumber)
		assert.Equal(t, "C001", merged.Lines[1].PartNumber)
		assert.Equal(t, "U001", merged.Lines[2].PartNumber)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		t.Parallel()

		tmpl := &Template{
			Lines: []bomimport.Line{
				{PartNumber: "R001", Quantity: 100, UnitCost: 0.12, ExtendedCost: 12.00},
			},
		}

		_, err := tmpl.Merge([]bomimport.Line{
			{PartNumber: "R001", Quantity: 50},
			{PartNumber: "C001", Quantity: 50},
		})
		require.NoError(t, err)

		require.Len(t, tmpl.Lines, 1)
		assert.Equal(t, 100, tmpl.Lines[0].Quantity)
		assert.InDelta(t, 12.00, tmpl.Lines[0].ExtendedCost, 1e-9)
	})

	t.Run("deduplicates within the incoming batch", func(t *testing.T) {
		t.Parallel()

		tmpl := &Template{}

		merged, err := tmpl.Merge([]bomimport.Line{
			{PartNumber: "R001", Quantity: 10, UnitCost: 0.12, ExtendedCost: 1.20},
			{PartNumber: "R001", Quantity: 5, UnitCost: 0.12, ExtendedCost: 0.60},
		})
		require.NoError(t, err)

		require.Len(t, merged.Lines, 1)
		assert.Equal(t, 15, merged.Lines[0].Quantity)
		assert.InDelta(t, 1.80, merged.Lines[0].ExtendedCost, 1e-9)
	})

	t.Run("refreshes the update timestamp", func(t *testing.T) {
		t.Parallel()

		past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		tmpl := &Template{UpdatedAt: past}

		merged, err := tmpl.Merge(nil)
		require.NoError(t, err)

		assert.True(t, merged.UpdatedAt.After(past))
		assert.Equal(t, past, tmpl.UpdatedAt)
	})
}

func TestCheckAvailability(t *testing.T) {
	t.Parallel()

	tmpl := &Template{
		Lines: []bomimport.Line{
			{PartNumber: "R001", Description: "10K Resistor", Quantity: 100},
			{PartNumber: "C001", Description: "100nF Capacitor", Quantity: 50},
			{PartNumber: "U001", Description: "Microcontroller", Quantity: 2},
		},
	}

	inventory := []InventoryItem{
		{PartNumber: "R001", CurrentStock: 500},
		{PartNumber: "C001", CurrentStock: 20},
	}

	t.Run("reports one check per line in line order", func(t *testing.T) {
		t.Parallel()

		checks := CheckAvailability(tmpl, inventory)

		require.Len(t, checks, 3)
		assert.Equal(t, "R001", checks[0].PartNumber)
		assert.Equal(t, "C001", checks[1].PartNumber)
		assert.Equal(t, "U001", checks[2].PartNumber)
	})

	t.Run("fully stocked parts are available", func(t *testing.T) {
		t.Parallel()

		checks := CheckAvailability(tmpl, inventory)

		assert.Equal(t, AvailabilityAvailable, checks[0].AvailabilityStatus)
		assert.Equal(t, 100, checks[0].AvailableQuantity)
		assert.Zero(t, checks[0].Shortage)
	})

	t.Run("short stock is partial with the shortage quantified", func(t *testing.T) {
		t.Parallel()

		checks := CheckAvailability(tmpl, inventory)

		assert.Equal(t, AvailabilityPartial, checks[1].AvailabilityStatus)
		assert.Equal(t, 20, checks[1].AvailableQuantity)
		assert.Equal(t, 30, checks[1].Shortage)
	})

	t.Run("parts absent from inventory are unavailable", func(t *testing.T) {
		t.Parallel()

		checks := CheckAvailability(tmpl, inventory)

		assert.Equal(t, AvailabilityUnavailable, checks[2].AvailabilityStatus)
		assert.Zero(t, checks[2].CurrentStock)
		assert.Equal(t, 2, checks[2].Shortage)
	})
}
