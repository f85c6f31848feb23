package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"
)

// Extract writes the pages at the given 0-based indices, in the given
// order, from the PDF at srcPath to outPath. pdfcpu's collect operation
// preserves the requested sequence, so the output follows user intent
// rather than document order.
//
// The output is assembled in a temp file next to outPath and renamed
// into place only on full success; a failed run never leaves a
// truncated output behind.
func Extract(srcPath string, indices []int, outPath string, force bool) error {
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return &WriteError{Path: outPath, Err: fmt.Errorf("%w (use --force to overwrite)", os.ErrExist)}
		}
	}

	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: outPath, Err: err}
	}

	pages := make([]string, len(indices))
	for i, idx := range indices {
		pages[i] = strconv.Itoa(idx + 1)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(outPath), uuid.NewString()))
	if err := api.CollectFile(srcPath, tmp, pages, conf); err != nil {
		_ = os.Remove(tmp)
		return &WriteError{Path: outPath, Err: err}
	}
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return &WriteError{Path: outPath, Err: err}
	}

	log.Info().Str("file", outPath).Int("pages", len(indices)).Msg("wrote extracted pdf")
	return nil
}

// DefaultOutputPath derives the output filename from the input ref:
// the input stem plus an _extract suffix, placed in outDir when set,
// otherwise next to a local input or in the working directory for
// remote refs.
func DefaultOutputPath(ref, outDir string) string {
	p := refPath(ref)
	stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	name := stem + "_extract.pdf"

	dir := outDir
	if dir == "" {
		if isRemote(ref) {
			dir = "."
		} else {
			dir = filepath.Dir(strings.TrimPrefix(ref, "file://"))
		}
	}
	return filepath.Join(dir, name)
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "s3://")
}

// refPath strips scheme and query so the base name survives URL inputs.
func refPath(ref string) string {
	p := ref
	for _, scheme := range []string{"file://", "http://", "https://", "s3://"} {
		p = strings.TrimPrefix(p, scheme)
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return p
}
