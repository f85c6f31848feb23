package resolve

import (
	"errors"
	"fmt"
)

// NotFoundError reports a label absent from the document's label table.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("label %q not found in document", e.Label)
}

// RangeError reports a range whose resolved low endpoint comes after its
// resolved high endpoint. Endpoints are echoed as the user wrote them.
type RangeError struct {
	Lo string
	Hi string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %s-%s: start resolves after end", e.Lo, e.Hi)
}

// OutOfRangeError reports a selector value outside the document.
type OutOfRangeError struct {
	Ref       string
	PageCount int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("page %s is out of range (document has %d pages)", e.Ref, e.PageCount)
}

// IsResolution reports whether err came from selector resolution, as
// opposed to parsing or document I/O.
func IsResolution(err error) bool {
	var (
		nf *NotFoundError
		re *RangeError
		or *OutOfRangeError
	)
	return errors.As(err, &nf) || errors.As(err, &re) || errors.As(err, &or)
}
