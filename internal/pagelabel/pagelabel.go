// Package pagelabel builds the bidirectional mapping between a PDF's
// declared page labels and physical page indices.
package pagelabel

import "strconv"

// Style is a page-numbering style as declared by a /PageLabels range.
type Style int

const (
	StyleNone Style = iota
	StyleDecimal
	StyleRomanUpper
	StyleRomanLower
	StyleLetterUpper
	StyleLetterLower
)

func (s Style) String() string {
	switch s {
	case StyleDecimal:
		return "decimal"
	case StyleRomanUpper:
		return "roman-upper"
	case StyleRomanLower:
		return "roman-lower"
	case StyleLetterUpper:
		return "letter-upper"
	case StyleLetterLower:
		return "letter-lower"
	default:
		return "none"
	}
}

// Range describes one labeling range from the document's /PageLabels
// number tree. StartIndex is the 0-based physical index of the first
// page in the range; First is the numeric value of that page's label.
type Range struct {
	StartIndex int
	Style      Style
	Prefix     string
	First      int
}

// Entry is the label assigned to a single physical page.
type Entry struct {
	PhysicalIndex int
	Label         string
	Style         Style
}

// Table maps label strings to physical indices and back. Labels are not
// globally unique, so forward lookup resolves to the first page in
// document order bearing the label. Immutable after Build.
type Table struct {
	entries []Entry
	byLabel map[string]int
}

// Build expands the document's label ranges over pageCount pages and
// indexes the result. Pages not covered by any range, or whose expanded
// label is empty, fall back to their 1-based decimal position, which is
// also the implicit scheme of documents without /PageLabels.
func Build(pageCount int, ranges []Range) *Table {
	t := &Table{
		entries: make([]Entry, 0, pageCount),
		byLabel: make(map[string]int, pageCount),
	}

	for i := 0; i < pageCount; i++ {
		r, ok := rangeFor(ranges, i)
		e := Entry{PhysicalIndex: i}
		if ok {
			e.Style = r.Style
			e.Label = Format(r.Style, r.Prefix, r.First+(i-r.StartIndex))
		}
		if e.Label == "" {
			e.Style = StyleNone
			e.Label = strconv.Itoa(i + 1)
		}
		t.entries = append(t.entries, e)
		if _, dup := t.byLabel[e.Label]; !dup {
			// First occurrence wins: "page labeled X" means the first
			// such page when flipping forward.
			t.byLabel[e.Label] = i
		}
	}
	return t
}

// rangeFor returns the labeling range covering physical page i: the
// range with the greatest StartIndex <= i. Ranges come pre-sorted from
// the number tree, whose keys are ascending by definition.
func rangeFor(ranges []Range, i int) (Range, bool) {
	found := false
	var best Range
	for _, r := range ranges {
		if r.StartIndex > i {
			break
		}
		best, found = r, true
	}
	return best, found
}

// Lookup resolves a label string to the first physical index bearing it.
func (t *Table) Lookup(label string) (int, bool) {
	i, ok := t.byLabel[label]
	return i, ok
}

// LabelFor returns the label assigned to physical page i.
func (t *Table) LabelFor(i int) string {
	if i < 0 || i >= len(t.entries) {
		return ""
	}
	return t.entries[i].Label
}

// Entries returns the per-page label assignments in physical order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Len returns the number of labeled pages.
func (t *Table) Len() int {
	return len(t.entries)
}
