package results

import "errors"

var (
	// ErrGroupIndex is returned when a rule references a filename capture group
	// that its pattern does not define.
	ErrGroupIndex = errors.New("filename group index out of range")

	// ErrUnknownField is returned when a rule labels rows with a field that
	// does not belong to the rule's report kind.
	ErrUnknownField = errors.New("field does not belong to report kind")

	// ErrUnknownKind is returned when a result or rule has a kind other than FIFO or Memory.
	ErrUnknownKind = errors.New("unknown report kind")

	// ErrDivisionByZero is returned when a rate is computed over no rows or zero time.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDuplicateBlockSize is returned when two sweep directories resolve to the same block size.
	ErrDuplicateBlockSize = errors.New("duplicate block size")

	// ErrMissingColumn is returned when a report lacks a column required by its kind.
	ErrMissingColumn = errors.New("missing report column")
)

// ErrTemplate is returned when a label template is malformed or refers to a
// placeholder without a matching argument.
var ErrTemplate = errors.New("invalid label template")
