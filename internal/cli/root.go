package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	fromVal  string
	toVal    string
	pagesVal string
	byLabel  bool
	output   string
	force    bool
)

// rootCmd is the tool itself: pdfextract is single-purpose, so the root
// command runs the extraction.
var rootCmd = &cobra.Command{
	Use:   "pdfextract <input.pdf>",
	Short: "Extract pages from a PDF into a new file",
	Long: `pdfextract copies a subset of pages from a source PDF into a new PDF.

Pages are selected either by physical position or, with --by-label, by the
page labels the document declares (roman-numeral front matter, arabic body
pages, prefixed appendix pages, and so on).

Examples:
  pdfextract report.pdf --pages 1,3,5-7
  pdfextract report.pdf --from 10 --to 20 -o chapter2.pdf
  pdfextract book.pdf --by-label --pages i-iv,1
  pdfextract s3://bucket/reports/q3.pdf --pages 1-2`,
	Args:          cobra.ExactArgs(1),
	RunE:          runExtract,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pdfextract v0.2.0")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.Flags().StringVar(&fromVal, "from", "", "first page of an inclusive range")
	rootCmd.Flags().StringVar(&toVal, "to", "", "last page of an inclusive range")
	rootCmd.Flags().StringVarP(&pagesVal, "pages", "p", "", `comma-separated pages and ranges, e.g. "1,3,5-7"`)
	rootCmd.Flags().BoolVarP(&byLabel, "by-label", "l", false, "interpret selectors as page labels instead of positions")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: <input>_extract.pdf)")
	rootCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing output file")

	rootCmd.AddCommand(versionCmd)
}
