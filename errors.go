package bomimport

import "errors"

// Failure conditions surfaced by the import pipeline. Callers are expected
// to discriminate with errors.Is and present a matching user-facing message;
// none of these should crash the surrounding application.
var (
	// ErrEmptyInput means the payload decoded to zero non-blank rows.
	ErrEmptyInput = errors.New("input contains no usable rows")

	// ErrUnreadableFile means the payload bytes could not be decoded at all
	// (corrupt binary, unsupported encoding, bad compression stream).
	ErrUnreadableFile = errors.New("file could not be read")

	// ErrNoHeaderFound means no row within the scan window scored as a
	// plausible column-header row. The caller may retry with an explicit
	// field mapping via ImportWithMapping.
	ErrNoHeaderFound = errors.New("no header row found")

	// ErrRequiredFieldUnmapped means automatic mapping could not locate a
	// description column. Recoverable: supply a manual FieldMapping.
	ErrRequiredFieldUnmapped = errors.New("description column could not be determined")

	// ErrNoUsableRows means a header was found but every data row below it
	// was skipped during normalization.
	ErrNoUsableRows = errors.New("no importable rows found")
)
