package summary

import (
	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
)

// Error kinds returned by this package. Test for them with errors.Is.
var (
	// ErrInvalidArgument reports an out-of-range style or heading kind, an
	// empty heading, or a table without a usable header row.
	ErrInvalidArgument error = foundation.CategoryValidation
	// ErrMalformedTable reports a table row whose cell count differs from the header.
	ErrMalformedTable error = foundation.CategoryTable
	// ErrSinkUnavailable reports a destination that cannot be resolved, opened or written.
	ErrSinkUnavailable error = foundation.CategorySink
)
