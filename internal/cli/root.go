package cli

import (
	"os"

	"github.com/krystianch/tmpshift/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tmpshift OFFSET SUBTITLE_FILE OUTPUT_FILE",
	Short: "Delay or hasten TMPlayer subtitles by a fixed offset",
	Long: `Tmpshift shifts every timestamp in a TMPlayer-format subtitle file
by a fixed number of seconds and writes the result to OUTPUT_FILE.

OFFSET is a signed number of seconds or a time string:
  120        two minutes later
  -90        ninety seconds earlier
  +03:55     three minutes and fifty-five seconds later
  -01:02:03  one hour, two minutes and three seconds earlier

Subtitles that would start before 00:00:00 are dropped from the output.
OUTPUT_FILE must not already exist.

Examples:
  tmpshift 5 movie.txt movie-fixed.txt
  tmpshift -01:30 movie.txt movie-fixed.txt`,
	Args: cobra.ExactArgs(3),
	RunE: runShift,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	rootCmd.SetArgs(protectNegativeOffset(os.Args[1:]))
	return rootCmd.Execute()
}

// protectNegativeOffset inserts a "--" terminator before a negative OFFSET
// argument like -90 or -01:30, which flag parsing would otherwise reject
// as an unknown flag.
func protectNegativeOffset(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			protected := make([]string, 0, len(args)+1)
			protected = append(protected, args[:i]...)
			protected = append(protected, "--")
			protected = append(protected, args[i:]...)
			return protected
		}
	}
	return args
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
