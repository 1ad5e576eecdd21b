package bomimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
)

// bytesReaderAt wraps a byte slice to implement io.ReaderAt and io.Seeker
type bytesReaderAt struct {
	data   []byte
	offset int64
}

// ReadAt implements io.ReaderAt
func (b *bytesReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n = copy(p, b.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}

// Size returns the size of the data
func (b *bytesReaderAt) Size() int64 {
	return int64(len(b.data))
}

// Read implements io.Reader
func (b *bytesReaderAt) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)
	return n, nil
}

// Seek implements io.Seeker
func (b *bytesReaderAt) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = b.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(b.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}

	if newOffset < 0 {
		return 0, errors.New("negative position")
	}

	b.offset = newOffset
	return newOffset, nil
}

// extractParquet decodes a Parquet payload into a Grid. The column names of
// the Parquet schema become the first grid row, so that header resolution
// and field mapping treat Parquet exports like any other spreadsheet.
func extractParquet(reader io.Reader) (Grid, error) {
	// Read all data into memory (Parquet requires random access)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read parquet data: %v", ErrUnreadableFile, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty parquet file", ErrEmptyInput)
	}

	bytesReader := &bytesReaderAt{data: data}

	pqReader, err := pqfile.NewParquetReader(bytesReader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create parquet reader: %v", ErrUnreadableFile, err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create arrow reader: %v", ErrUnreadableFile, err)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read table: %v", ErrUnreadableFile, err)
	}
	defer table.Release()

	schema := table.Schema()
	headerRow := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		headerRow[i] = field.Name
	}

	if table.NumRows() == 0 {
		return nil, fmt.Errorf("%w: parquet file has no rows", ErrEmptyInput)
	}

	grid := Grid{headerRow}

	tableReader := array.NewTableReader(table, 0)
	defer tableReader.Release()

	for tableReader.Next() {
		batch := tableReader.Record()

		numRows := batch.NumRows()
		for i := range numRows {
			row := make([]string, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = arrowCellString(col, i)
			}
			if !isBlankRow(row) {
				grid = append(grid, row)
			}
		}

		// Release the batch to free memory immediately
		batch.Release()
	}

	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("%w: error reading table records: %v", ErrUnreadableFile, err)
	}

	if len(grid) <= 1 {
		return nil, fmt.Errorf("%w: parquet file has no data rows", ErrEmptyInput)
	}
	return grid, nil
}

// arrowCellString extracts a value from an Arrow array at the given index as
// the string representation the rest of the pipeline works with.
func arrowCellString(arr arrow.Array, index int64) string {
	if arr.IsNull(int(index)) {
		return ""
	}

	switch a := arr.(type) {
	case *array.Boolean:
		if a.Value(int(index)) {
			return "true"
		}
		return "false"

	case *array.Int8:
		return strconv.Itoa(int(a.Value(int(index))))
	case *array.Int16:
		return strconv.Itoa(int(a.Value(int(index))))
	case *array.Int32:
		return strconv.Itoa(int(a.Value(int(index))))
	case *array.Int64:
		return strconv.FormatInt(a.Value(int(index)), 10)

	case *array.Uint8:
		return strconv.FormatUint(uint64(a.Value(int(index))), 10)
	case *array.Uint16:
		return strconv.FormatUint(uint64(a.Value(int(index))), 10)
	case *array.Uint32:
		return strconv.FormatUint(uint64(a.Value(int(index))), 10)
	case *array.Uint64:
		return strconv.FormatUint(a.Value(int(index)), 10)

	case *array.Float32:
		return fmt.Sprintf("%g", a.Value(int(index)))
	case *array.Float64:
		return fmt.Sprintf("%g", a.Value(int(index)))

	case *array.String:
		return a.Value(int(index))
	case *array.Binary:
		return string(a.Value(int(index)))

	default:
		return fmt.Sprintf("%v", arr.GetOneForMarshal(int(index)))
	}
}
