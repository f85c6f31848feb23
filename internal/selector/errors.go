package selector

import (
	"errors"
	"fmt"
)

// ErrConflictingSelectors is returned when both --from/--to and --pages
// are supplied in one invocation.
var ErrConflictingSelectors = errors.New("conflicting selectors: use either --from/--to or --pages, not both")

// ErrMissingSelector is returned when no selection form is supplied.
var ErrMissingSelector = errors.New("missing selector: supply --from/--to or --pages")

// SyntaxError represents a malformed selector item.
type SyntaxError struct {
	Item   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid selector %q: %s", e.Item, e.Reason)
}

// IsUsage reports whether err is a parse-time selector error, as opposed
// to a resolution or I/O failure.
func IsUsage(err error) bool {
	var se *SyntaxError
	return errors.Is(err, ErrConflictingSelectors) ||
		errors.Is(err, ErrMissingSelector) ||
		errors.As(err, &se)
}
