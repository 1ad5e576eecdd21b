package bomimport

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// FileType represents supported file types including compression variants.
type FileType int

const (
	// CSV represents CSV file type.
	CSV FileType = iota
	// TSV represents TSV file type.
	TSV
	// XLSX represents Excel XLSX file type.
	XLSX
	// Parquet represents Apache Parquet file type.
	Parquet

	// CSVGZ represents gzip-compressed CSV file type.
	CSVGZ
	// CSVBZ2 represents bzip2-compressed CSV file type.
	CSVBZ2
	// CSVXZ represents xz-compressed CSV file type.
	CSVXZ
	// CSVZSTD represents zstd-compressed CSV file type.
	CSVZSTD

	// TSVGZ represents gzip-compressed TSV file type.
	TSVGZ
	// TSVBZ2 represents bzip2-compressed TSV file type.
	TSVBZ2
	// TSVXZ represents xz-compressed TSV file type.
	TSVXZ
	// TSVZSTD represents zstd-compressed TSV file type.
	TSVZSTD

	// XLSXGZ represents gzip-compressed XLSX file type.
	XLSXGZ
	// XLSXBZ2 represents bzip2-compressed XLSX file type.
	XLSXBZ2
	// XLSXXZ represents xz-compressed XLSX file type.
	XLSXXZ
	// XLSXZSTD represents zstd-compressed XLSX file type.
	XLSXZSTD

	// ParquetGZ represents gzip-compressed Parquet file type.
	ParquetGZ
	// ParquetBZ2 represents bzip2-compressed Parquet file type.
	ParquetBZ2
	// ParquetXZ represents xz-compressed Parquet file type.
	ParquetXZ
	// ParquetZSTD represents zstd-compressed Parquet file type.
	ParquetZSTD

	// Unsupported represents unsupported file type.
	Unsupported
)

// String returns a human-readable string representation of the FileType.
func (ft FileType) String() string {
	switch ft {
	case CSV:
		return "CSV"
	case TSV:
		return "TSV"
	case XLSX:
		return "XLSX"
	case Parquet:
		return "Parquet"
	case CSVGZ:
		return "CSV (gzip)"
	case CSVBZ2:
		return "CSV (bzip2)"
	case CSVXZ:
		return "CSV (xz)"
	case CSVZSTD:
		return "CSV (zstd)"
	case TSVGZ:
		return "TSV (gzip)"
	case TSVBZ2:
		return "TSV (bzip2)"
	case TSVXZ:
		return "TSV (xz)"
	case TSVZSTD:
		return "TSV (zstd)"
	case XLSXGZ:
		return "XLSX (gzip)"
	case XLSXBZ2:
		return "XLSX (bzip2)"
	case XLSXXZ:
		return "XLSX (xz)"
	case XLSXZSTD:
		return "XLSX (zstd)"
	case ParquetGZ:
		return "Parquet (gzip)"
	case ParquetBZ2:
		return "Parquet (bzip2)"
	case ParquetXZ:
		return "Parquet (xz)"
	case ParquetZSTD:
		return "Parquet (zstd)"
	default:
		return "Unsupported"
	}
}

// File extensions
const (
	ExtCSV     = ".csv"
	ExtTSV     = ".tsv"
	ExtXLSX    = ".xlsx"
	ExtParquet = ".parquet"
	ExtGZ      = ".gz"
	ExtBZ2     = ".bz2"
	ExtXZ      = ".xz"
	ExtZSTD    = ".zst"
)

// Compression type identifiers
const (
	compGZ   = "gz"
	compBZ2  = "bz2"
	compXZ   = "xz"
	compZSTD = "zstd"
)

// DetectFileType detects file type from path extension, including compression variants.
func DetectFileType(path string) FileType {
	basePath := path
	var compressionType string

	// Remove compression extensions
	switch {
	case strings.HasSuffix(strings.ToLower(path), ExtGZ):
		basePath = path[:len(path)-len(ExtGZ)]
		compressionType = compGZ
	case strings.HasSuffix(strings.ToLower(path), ExtBZ2):
		basePath = path[:len(path)-len(ExtBZ2)]
		compressionType = compBZ2
	case strings.HasSuffix(strings.ToLower(path), ExtXZ):
		basePath = path[:len(path)-len(ExtXZ)]
		compressionType = compXZ
	case strings.HasSuffix(strings.ToLower(path), ExtZSTD):
		basePath = path[:len(path)-len(ExtZSTD)]
		compressionType = compZSTD
	}

	ext := strings.ToLower(filepath.Ext(basePath))
	switch ext {
	case ExtCSV:
		switch compressionType {
		case compGZ:
			return CSVGZ
		case compBZ2:
			return CSVBZ2
		case compXZ:
			return CSVXZ
		case compZSTD:
			return CSVZSTD
		default:
			return CSV
		}
	case ExtTSV:
		switch compressionType {
		case compGZ:
			return TSVGZ
		case compBZ2:
			return TSVBZ2
		case compXZ:
			return TSVXZ
		case compZSTD:
			return TSVZSTD
		default:
			return TSV
		}
	case ExtXLSX:
		switch compressionType {
		case compGZ:
			return XLSXGZ
		case compBZ2:
			return XLSXBZ2
		case compXZ:
			return XLSXXZ
		case compZSTD:
			return XLSXZSTD
		default:
			return XLSX
		}
	case ExtParquet:
		switch compressionType {
		case compGZ:
			return ParquetGZ
		case compBZ2:
			return ParquetBZ2
		case compXZ:
			return ParquetXZ
		case compZSTD:
			return ParquetZSTD
		default:
			return Parquet
		}
	default:
		return Unsupported
	}
}

// IsCompressed returns true if the file type is compressed.
func IsCompressed(ft FileType) bool {
	switch ft {
	case CSVGZ, CSVBZ2, CSVXZ, CSVZSTD,
		TSVGZ, TSVBZ2, TSVXZ, TSVZSTD,
		XLSXGZ, XLSXBZ2, XLSXXZ, XLSXZSTD,
		ParquetGZ, ParquetBZ2, ParquetXZ, ParquetZSTD:
		return true
	default:
		return false
	}
}

// BaseFileType returns the base file type without compression.
func BaseFileType(ft FileType) FileType {
	switch ft {
	case CSV, CSVGZ, CSVBZ2, CSVXZ, CSVZSTD:
		return CSV
	case TSV, TSVGZ, TSVBZ2, TSVXZ, TSVZSTD:
		return TSV
	case XLSX, XLSXGZ, XLSXBZ2, XLSXXZ, XLSXZSTD:
		return XLSX
	case Parquet, ParquetGZ, ParquetBZ2, ParquetXZ, ParquetZSTD:
		return Parquet
	default:
		return Unsupported
	}
}

// newDecompressedReader wraps the reader with appropriate decompression.
func newDecompressedReader(reader io.Reader, fileType FileType) (io.Reader, func() error, error) {
	switch fileType {
	case CSVGZ, TSVGZ, XLSXGZ, ParquetGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, func() error { return gzReader.Close() }, nil

	case CSVBZ2, TSVBZ2, XLSXBZ2, ParquetBZ2:
		bz2Reader := bzip2.NewReader(reader)
		return bz2Reader, nil, nil

	case CSVXZ, TSVXZ, XLSXXZ, ParquetXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, nil, nil

	case CSVZSTD, TSVZSTD, XLSXZSTD, ParquetZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error { decoder.Close(); return nil }, nil

	default:
		// No compression
		return reader, nil, nil
	}
}
