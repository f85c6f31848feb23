package cli

import (
	"errors"

	"github.com/local/pdfextract/internal/document"
	"github.com/local/pdfextract/internal/resolve"
	"github.com/local/pdfextract/internal/selector"
)

// Process exit codes. Usage, resolution and I/O failures get distinct
// codes so callers can tell a bad selector from a bad document.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitResolution = 3
	ExitIO         = 4
)

// ExitCode classifies err into a process exit code.
func ExitCode(err error) int {
	var (
		readErr  *document.ReadError
		writeErr *document.WriteError
	)
	switch {
	case err == nil:
		return ExitOK
	case selector.IsUsage(err):
		return ExitUsage
	case resolve.IsResolution(err):
		return ExitResolution
	case errors.As(err, &readErr), errors.As(err, &writeErr):
		return ExitIO
	default:
		return ExitFailure
	}
}
