package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/local/pdfextract/internal/config"
	"github.com/local/pdfextract/internal/document"
	"github.com/local/pdfextract/internal/logger"
	"github.com/local/pdfextract/internal/pagelabel"
	"github.com/local/pdfextract/internal/resolve"
	"github.com/local/pdfextract/internal/selector"
)

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logger.Init(cfg.Logging); err != nil {
		return err
	}

	// Selector syntax is checked before touching the document so usage
	// errors never cost a download or leave any file behind.
	tokens, err := selector.Parse(selector.Spec{From: fromVal, To: toVal, Pages: pagesVal}, byLabel)
	if err != nil {
		return err
	}

	localPath, cleanup, err := document.FetchLocal(cmd.Context(), input)
	defer cleanup()
	if err != nil {
		return err
	}

	doc, err := document.Open(localPath)
	if err != nil {
		return err
	}

	mode := resolve.ByPhysicalIndex
	var table *pagelabel.Table
	if byLabel {
		mode = resolve.ByLabel
		ranges, err := doc.LabelRanges()
		if err != nil {
			return err
		}
		table = pagelabel.Build(doc.PageCount, ranges)
	}

	indices, err := resolve.Pages(tokens, mode, table, doc.PageCount)
	if err != nil {
		return err
	}
	log.Debug().Ints("indices", indices).Msg("resolved page selection")

	outPath := output
	if outPath == "" {
		outPath = document.DefaultOutputPath(input, cfg.OutputDir)
	}

	if err := document.Extract(localPath, indices, outPath, force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "extracted %d pages -> %s\n", len(indices), outPath)
	return nil
}
