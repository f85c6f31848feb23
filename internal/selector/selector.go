package selector

import "strings"

// Token is one parsed unit of page-selection syntax: either a Single
// value or an inclusive Range. Values stay raw strings; in label mode
// they are only meaningful after a label-table lookup.
type Token interface {
	isToken()
}

// Single selects one page by number or label.
type Single struct {
	Value string
}

// Range selects an inclusive span of pages.
type Range struct {
	Lo string
	Hi string
}

func (Single) isToken() {}
func (Range) isToken()  {}

// Spec carries the raw selection inputs from the CLI. From/To and Pages
// are mutually exclusive forms.
type Spec struct {
	From  string
	To    string
	Pages string
}

// Parse turns a Spec into an ordered token sequence.
// With byLabel false every value must be a base-10 non-negative integer;
// with byLabel true values are kept verbatim for later table lookup.
func Parse(spec Spec, byLabel bool) ([]Token, error) {
	hasBounds := spec.From != "" || spec.To != ""
	hasList := spec.Pages != ""

	switch {
	case hasBounds && hasList:
		return nil, ErrConflictingSelectors
	case !hasBounds && !hasList:
		return nil, ErrMissingSelector
	}

	if hasBounds {
		return parseBounds(spec.From, spec.To, byLabel)
	}
	return parseList(spec.Pages, byLabel)
}

func parseBounds(from, to string, byLabel bool) ([]Token, error) {
	if from == "" {
		return nil, &SyntaxError{Item: to, Reason: "--to given without --from"}
	}
	if to == "" {
		// A lone --from selects exactly that page.
		to = from
	}
	if err := checkValue(from, byLabel); err != nil {
		return nil, err
	}
	if err := checkValue(to, byLabel); err != nil {
		return nil, err
	}
	return []Token{Range{Lo: from, Hi: to}}, nil
}

func parseList(pages string, byLabel bool) ([]Token, error) {
	var tokens []Token
	for _, item := range strings.Split(pages, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, &SyntaxError{Item: pages, Reason: "empty list item"}
		}
		if lo, hi, ok := splitRange(item); ok {
			if lo == "" || hi == "" {
				return nil, &SyntaxError{Item: item, Reason: "range is missing an endpoint"}
			}
			if err := checkValue(lo, byLabel); err != nil {
				return nil, err
			}
			if err := checkValue(hi, byLabel); err != nil {
				return nil, err
			}
			tokens = append(tokens, Range{Lo: lo, Hi: hi})
			continue
		}
		if err := checkValue(item, byLabel); err != nil {
			return nil, err
		}
		tokens = append(tokens, Single{Value: item})
	}
	return tokens, nil
}

// splitRange reports whether item has the low-high shape. The first dash
// is the separator, so labels containing dashes are not range-safe; that
// matches the documented selector grammar.
func splitRange(item string) (lo, hi string, ok bool) {
	i := strings.Index(item, "-")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+1:]), true
}

func checkValue(v string, byLabel bool) error {
	if byLabel {
		return nil
	}
	if !isDigits(v) {
		return &SyntaxError{Item: v, Reason: "not a non-negative page number"}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
