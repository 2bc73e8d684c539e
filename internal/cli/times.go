package cli

import (
	"bytes"
	"fmt"

	"github.com/mgpai22/resub/internal/subtitle"
	"github.com/spf13/cobra"
)

var timesCmd = &cobra.Command{
	Use:   "times [subtitle_file]",
	Short: "Print the time intervals of a subtitle file in seconds",
	Long: `Print one line per timing line of a subtitle file, formatted as
start,end in seconds with two decimals. Timestamps may use ':' or ','
before the fraction.

Examples:
  resub times episode.srt
  resub times episode.srt -o intervals.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runTimes,
}

func init() {
	rootCmd.AddCommand(timesCmd)
}

func runTimes(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	logger.Debugw("Extracting intervals", "input", subtitlePath)

	var buf bytes.Buffer
	count, err := subtitle.ExtractTimesFile(subtitlePath, &buf)
	if err != nil {
		return fmt.Errorf("time extraction failed: %w", err)
	}

	logger.Debugw("Extracted intervals", "intervals", count)

	return writeOutput(cmd, outputPath, buf.Bytes())
}
