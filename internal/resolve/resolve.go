// Package resolve turns parsed selector tokens into the final ordered
// list of physical page indices to extract.
package resolve

import (
	"strconv"

	"github.com/local/pdfextract/internal/pagelabel"
	"github.com/local/pdfextract/internal/selector"
)

// Mode selects how token values are interpreted.
type Mode int

const (
	// ByPhysicalIndex treats values as 1-based physical page numbers.
	ByPhysicalIndex Mode = iota
	// ByLabel treats values as document-declared page labels.
	ByLabel
)

// Pages resolves tokens against a document with pageCount pages. In
// ByLabel mode the table must be non-nil. The result preserves the
// first-appearance order of resolved indices and holds each index once,
// so "5,1,5" resolves to [4 0]. Any unresolvable token aborts the whole
// run; no partial result is returned.
func Pages(tokens []selector.Token, mode Mode, table *pagelabel.Table, pageCount int) ([]int, error) {
	var out []int
	seen := make(map[int]struct{})

	emit := func(idx int) {
		if _, dup := seen[idx]; dup {
			return
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}

	for _, tok := range tokens {
		switch tok := tok.(type) {
		case selector.Single:
			idx, err := resolveOne(tok.Value, mode, table, pageCount)
			if err != nil {
				return nil, err
			}
			emit(idx)
		case selector.Range:
			lo, err := resolveOne(tok.Lo, mode, table, pageCount)
			if err != nil {
				return nil, err
			}
			hi, err := resolveOne(tok.Hi, mode, table, pageCount)
			if err != nil {
				return nil, err
			}
			if lo > hi {
				return nil, &RangeError{Lo: tok.Lo, Hi: tok.Hi}
			}
			for i := lo; i <= hi; i++ {
				emit(i)
			}
		}
	}
	return out, nil
}

// resolveOne maps a single selector value to a 0-based physical index
// and bounds-checks it against the document.
func resolveOne(value string, mode Mode, table *pagelabel.Table, pageCount int) (int, error) {
	var idx int
	switch mode {
	case ByLabel:
		i, ok := table.Lookup(value)
		if !ok {
			return 0, &NotFoundError{Label: value}
		}
		idx = i
	default:
		// Parser guarantees digits; anything unparseable here is a
		// number too large for int, which is out of range regardless.
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, &OutOfRangeError{Ref: value, PageCount: pageCount}
		}
		idx = n - 1
	}

	if idx < 0 || idx >= pageCount {
		return 0, &OutOfRangeError{Ref: value, PageCount: pageCount}
	}
	return idx, nil
}
