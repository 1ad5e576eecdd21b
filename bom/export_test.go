package bom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cannasol-Tech/bomimport"
)

func testTemplate() *Template {
	return &Template{
		ID:      "tmpl-1",
		Name:    "Controller Board",
		Version: "1.0",
		Status:  StatusActive,
		Lines: []bomimport.Line{
			{
				PartNumber:        "R001",
				Description:       "10K Resistor 1% 0805",
				Category:          "Resistors",
				Quantity:          100,
				UnitCost:          0.12,
				ExtendedCost:      12.00,
				Supplier:          "Acme, Inc.",
				DigikeyPartNumber: "311-10KARCT-ND",
			},
			{
				PartNumber:   "C001",
				Description:  "100nF Capacitor X7R",
				Category:     "Capacitors",
				Quantity:     50,
				UnitCost:     0.08,
				ExtendedCost: 4.00,
				Supplier:     "Mouser",
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	t.Run("exported CSV re-imports without manual mapping", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, testTemplate()))

		result, err := bomimport.Import(&buf, bomimport.CSV)
		require.NoError(t, err)

		assert.Equal(t, 0, result.HeaderRow)
		require.Len(t, result.Lines, 2)

		first := result.Lines[0]
		assert.Equal(t, "R001", first.PartNumber)
		assert.Equal(t, "10K Resistor 1% 0805", first.Description)
		assert.Equal(t, "Resistors", first.Category)
		assert.Equal(t, 100, first.Quantity)
		assert.InDelta(t, 0.12, first.UnitCost, 1e-9)
		assert.InDelta(t, 12.00, first.ExtendedCost, 1e-9)
		assert.Equal(t, "Acme, Inc.", first.Supplier)
		assert.Equal(t, "311-10KARCT-ND", first.DigikeyPartNumber)
	})

	t.Run("writes one record per line plus the header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, testTemplate()))

		lines := bytes.Count(buf.Bytes(), []byte("\n"))
		assert.Equal(t, 3, lines)
	})
}

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	t.Run("exported workbook re-imports with the total row skipped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, WriteXLSX(&buf, testTemplate()))

		result, err := bomimport.Import(&buf, bomimport.XLSX)
		require.NoError(t, err)

		assert.Equal(t, 0, result.HeaderRow)
		require.Len(t, result.Lines, 2)
		assert.Equal(t, "R001", result.Lines[0].PartNumber)
		assert.Equal(t, 100, result.Lines[0].Quantity)
		assert.InDelta(t, 12.00, result.Lines[0].ExtendedCost, 1e-9)
		assert.Equal(t, "Mouser", result.Lines[1].Supplier)
	})

	t.Run("empty template still produces a readable workbook", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		tmpl := &Template{Name: "Empty"}
		require.NoError(t, WriteXLSX(&buf, tmpl))

		assert.Positive(t, buf.Len())
	})
}
