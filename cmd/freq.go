package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webloom/spinneret/internal/textproc"
)

var freqVerbose bool

// newFreqCmd creates and configures the 'freq' subcommand, a standalone
// frequency counter over an existing text file.
func newFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq <word|twogram> <input-file> [output-file]",
		Short: "Counts word or two-gram frequencies in a text file",
		Long: `Tokenizes the input file and prints a frequency report, either of single
words or of adjacent two-grams. With an output file given, the report is
written there; --verbose additionally mirrors it to stdout.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runFreqCommand,
	}
	cmd.Flags().BoolVarP(&freqVerbose, "verbose", "v", false, "mirror the report to stdout")
	return cmd
}

func runFreqCommand(_ *cobra.Command, args []string) error {
	mode := args[0]
	if mode != modeWord && mode != modeTwoGram {
		return fmt.Errorf("processing mode must be %q or %q, got %q", modeWord, modeTwoGram, mode)
	}

	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("open input %s: %w", args[1], err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	tokens, err := textproc.Tokenize(f)
	if err != nil {
		return fmt.Errorf("tokenize %s: %w", args[1], err)
	}

	freqs := computeFrequencies(mode, tokens)

	output := ""
	if len(args) == 3 {
		output = args[2]
	}
	return writeReport(freqs, output, freqVerbose)
}
