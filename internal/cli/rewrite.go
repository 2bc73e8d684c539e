package cli

import (
	"bytes"
	"fmt"

	"github.com/mgpai22/resub/internal/subtitle"
	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [subtitle_file] [replacements_file]",
	Short: "Replace the text of every subtitle block with new lines",
	Long: `Rebuild a subtitle file using one replacement line per block, taken in
order from the replacements file. Index and timing lines are kept as they
are, the original text is dropped and the replacement is wrapped at the
given width. A replacement line reading "null" is written as the
placeholder instead.

The run fails if the replacements file has fewer lines than the subtitle
file has blocks; nothing is written in that case.

Examples:
  resub rewrite episode.srt translated.txt > episode.en.srt
  resub rewrite episode.srt translated.txt -o out/episode.en.srt --width 42`,
	Args: cobra.ExactArgs(2),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().
		IntP("width", "w", subtitle.DefaultWidth, "Maximum characters per subtitle line")
	rewriteCmd.Flags().
		String("placeholder", subtitle.DefaultPlaceholder, `Text written for "null" replacement lines`)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	replacementsPath := args[1]

	width, _ := cmd.Flags().GetInt("width")
	placeholder, _ := cmd.Flags().GetString("placeholder")
	outputPath, _ := cmd.Flags().GetString("output")

	opts := subtitle.DefaultRewriteOptions()
	if cmd.Flags().Changed("width") {
		opts.Width = width
	}
	if cmd.Flags().Changed("placeholder") {
		opts.Placeholder = placeholder
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	logger.Debugw("Rewriting subtitles",
		"input", subtitlePath,
		"replacements", replacementsPath,
		"width", width,
	)

	var buf bytes.Buffer
	stats, err := subtitle.RewriteFiles(subtitlePath, replacementsPath, &buf, opts)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	logger.Debugw("Rewrote subtitles",
		"blocks", stats.Blocks,
		"placeholders", stats.Placeholders,
	)

	return writeOutput(cmd, outputPath, buf.Bytes())
}
