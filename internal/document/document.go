// Package document wraps the pdfcpu collaborator: opening a source PDF,
// reading its page count and /PageLabels tree, and writing the extracted
// output. All label/selector logic lives elsewhere.
package document

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rs/zerolog/log"

	"github.com/local/pdfextract/internal/pagelabel"
)

// Document is a read-only handle on an opened PDF. It lives for one
// extraction run.
type Document struct {
	Path      string
	PageCount int

	ctx *model.Context
}

// Open reads and validates the PDF at path.
func Open(path string) (*Document, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	log.Debug().Str("file", path).Int("pages", n).Msg("opened pdf")
	return &Document{Path: path, PageCount: n, ctx: ctx}, nil
}

// LabelRanges reads the catalog's /PageLabels number tree. A document
// without explicit labels yields an empty slice; the label table then
// falls back to implicit 1-based decimal numbering for every page.
func (d *Document) LabelRanges() ([]pagelabel.Range, error) {
	root, err := d.ctx.Catalog()
	if err != nil {
		return nil, &ReadError{Path: d.Path, Err: err}
	}

	obj, found := root.Find("PageLabels")
	if !found {
		return nil, nil
	}

	ranges, err := d.collectLabelNode(obj)
	if err != nil {
		return nil, &ReadError{Path: d.Path, Err: err}
	}
	log.Debug().Int("ranges", len(ranges)).Msg("read page label tree")
	return ranges, nil
}

// collectLabelNode walks one number-tree node, recursing into /Kids and
// reading /Nums pairs. Tree keys are ascending by definition, so the
// result comes back sorted by start index.
func (d *Document) collectLabelNode(o types.Object) ([]pagelabel.Range, error) {
	dict, err := d.ctx.DereferenceDict(o)
	if err != nil || dict == nil {
		return nil, err
	}

	var ranges []pagelabel.Range

	if kids, found := dict.Find("Kids"); found {
		arr, err := d.ctx.DereferenceArray(kids)
		if err != nil {
			return nil, err
		}
		for _, kid := range arr {
			sub, err := d.collectLabelNode(kid)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, sub...)
		}
	}

	nums, found := dict.Find("Nums")
	if !found {
		return ranges, nil
	}
	arr, err := d.ctx.DereferenceArray(nums)
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < len(arr); i += 2 {
		start, err := d.ctx.DereferenceInteger(arr[i])
		if err != nil || start == nil {
			continue
		}
		entry, err := d.ctx.DereferenceDict(arr[i+1])
		if err != nil || entry == nil {
			continue
		}

		r := pagelabel.Range{StartIndex: start.Value(), First: 1}
		if s := entry.NameEntry("S"); s != nil {
			r.Style = styleFromName(*s)
		}
		if st := entry.IntEntry("St"); st != nil && *st >= 1 {
			r.First = *st
		}
		if p, found := entry.Find("P"); found {
			r.Prefix = d.prefixString(p)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func (d *Document) prefixString(o types.Object) string {
	obj, err := d.ctx.Dereference(o)
	if err != nil {
		return ""
	}
	switch s := obj.(type) {
	case types.StringLiteral:
		if v, err := types.StringLiteralToString(s); err == nil {
			return v
		}
	case types.HexLiteral:
		if v, err := types.HexLiteralToString(s); err == nil {
			return v
		}
	}
	return ""
}

// styleFromName maps the /S name of a label range to a Style.
func styleFromName(name string) pagelabel.Style {
	switch name {
	case "D":
		return pagelabel.StyleDecimal
	case "R":
		return pagelabel.StyleRomanUpper
	case "r":
		return pagelabel.StyleRomanLower
	case "A":
		return pagelabel.StyleLetterUpper
	case "a":
		return pagelabel.StyleLetterLower
	default:
		return pagelabel.StyleNone
	}
}
