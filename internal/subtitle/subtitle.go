package subtitle

import (
	"errors"
	"fmt"
)

// represents a single TMPlayer subtitle line
type Line struct {
	Seconds   int  // start time in seconds since 00:00:00
	Separator byte // ':' or '=', preserved verbatim from input
	Text      string
}

var (
	ErrInvalidOffset = errors.New("invalid offset format")
	ErrMalformedLine = errors.New("malformed subtitle line")
	ErrOutputExists  = errors.New("output file already exists")
)

// renders the line back to TMPlayer format
func (l Line) String() string {
	return FormatTimestamp(l.Seconds) + string(l.Separator) + l.Text
}

// FormatTimestamp renders a flattened seconds value as H+:MM:SS. The hour
// field is zero-padded to at least two digits and grows unbounded; minute
// and second are always exactly two digits. A negative total renders with
// a leading '-' so callers can tell the subtitle fell before 00:00:00.
func FormatTimestamp(total int) string {
	// floor division keeps minute and second in [0,59] for negative totals
	second := floorMod(total, 60)
	totalMinutes := floorDiv(total, 60)
	minute := floorMod(totalMinutes, 60)
	hour := floorDiv(totalMinutes, 60)

	if hour < 0 {
		return fmt.Sprintf("-%02d:%02d:%02d", -hour, minute, second)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// Go's / and % truncate toward zero; timestamp math needs flooring
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
