package cli

import (
	"fmt"
	"path/filepath"

	"github.com/krystianch/tmpshift/internal/subtitle"
	"github.com/spf13/cobra"
)

func runShift(cmd *cobra.Command, args []string) error {
	offsetText := args[0]
	subtitlePath := args[1]
	outputPath := args[2]

	offset, err := subtitle.ParseOffset(offsetText)
	if err != nil {
		return fmt.Errorf("failed to parse offset: %w", err)
	}

	logger.Infow("Shifting subtitles",
		"input", subtitlePath,
		"output", outputPath,
		"offset_seconds", offset,
	)

	lines, err := subtitle.ReadFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	logger.Infow("Parsed subtitle file", "lines", len(lines))

	shifted := subtitle.Shift(lines, offset)
	dropped := len(lines) - len(shifted)
	if dropped > 0 {
		logger.Warnw("Dropping subtitles shifted before 00:00:00",
			"dropped", dropped,
		)
	}

	if err := subtitle.WriteFile(outputPath, shifted); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles shifted successfully: %s\n", absOutput)
	fmt.Printf("  Lines written: %d\n", len(shifted))
	if dropped > 0 {
		fmt.Printf("  Lines dropped: %d\n", dropped)
	}

	return nil
}
