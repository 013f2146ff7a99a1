package cli

import (
	"fmt"

	"github.com/krystianch/tmpshift/internal/subtitle"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect SUBTITLE_FILE",
	Short: "Validate a TMPlayer subtitle file and print a summary",
	Long: `Parse SUBTITLE_FILE and print a short summary: line count, first and
last timestamps, and which separator characters are in use.

Parsing is strict, so inspect also works as a format check before
shifting a file.

Examples:
  tmpshift inspect movie.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	lines, err := subtitle.ReadFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	if len(lines) == 0 {
		return fmt.Errorf("subtitle file contains no lines")
	}

	logger.Infow("Parsed subtitle file",
		"input", subtitlePath,
		"lines", len(lines),
	)

	colons, equals := 0, 0
	first, last := lines[0].Seconds, lines[0].Seconds
	for _, line := range lines {
		if line.Separator == '=' {
			equals++
		} else {
			colons++
		}
		if line.Seconds < first {
			first = line.Seconds
		}
		if line.Seconds > last {
			last = line.Seconds
		}
	}

	fmt.Printf("File: %s\n", subtitlePath)
	fmt.Printf("  Lines: %d\n", len(lines))
	fmt.Printf("  First subtitle: %s\n", subtitle.FormatTimestamp(first))
	fmt.Printf("  Last subtitle: %s\n", subtitle.FormatTimestamp(last))
	fmt.Printf("  Separators: %d ':', %d '='\n", colons, equals)

	return nil
}
