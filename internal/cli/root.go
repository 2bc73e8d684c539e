package cli

import (
	"github.com/mgpai22/resub/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "resub",
	Short: "Subtitle timing extractor and text splicer",
	Long: `Resub works on SRT-style subtitle files in two independent steps.

"times" prints every interval of a subtitle file in seconds, one
start,end pair per line, for external processing. "rewrite" then puts
one replacement line per block back into the original file, keeping the
index and timing lines and wrapping long text.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (default: stdout)")
}
