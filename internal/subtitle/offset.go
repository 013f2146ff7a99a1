package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	secondsOffsetRegex = regexp.MustCompile(`^[-+]?\d+$`)
	minutesOffsetRegex = regexp.MustCompile(`^([-+])?(\d{2}):(\d{2})$`)
	hoursOffsetRegex   = regexp.MustCompile(`^([-+])?(\d+):(\d{2}):(\d{2})$`)
)

// ParseOffset converts an offset string to a signed number of seconds.
//
// Three grammars are recognized, tried in order: a signed number of
// seconds ("120", "-90"), signed MM:SS ("+03:55"), and signed H+:MM:SS
// ("-01:02:03"). The whole string must match; a missing sign means
// positive.
func ParseOffset(text string) (int, error) {
	if secondsOffsetRegex.MatchString(text) {
		value, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, text)
		}
		return value, nil
	}

	if matches := minutesOffsetRegex.FindStringSubmatch(text); matches != nil {
		minutes, _ := strconv.Atoi(matches[2])
		seconds, _ := strconv.Atoi(matches[3])
		value := minutes*60 + seconds
		if matches[1] == "-" {
			value = -value
		}
		return value, nil
	}

	if matches := hoursOffsetRegex.FindStringSubmatch(text); matches != nil {
		hours, err := strconv.Atoi(matches[2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, text)
		}
		minutes, _ := strconv.Atoi(matches[3])
		seconds, _ := strconv.Atoi(matches[4])
		value := hours*3600 + minutes*60 + seconds
		if matches[1] == "-" {
			value = -value
		}
		return value, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, text)
}

// OffsetTimestamp shifts a single H+:MM:SS timestamp by the given number
// of seconds. A result before 00:00:00 renders with a leading '-'.
func OffsetTimestamp(timestamp string, seconds int) (string, error) {
	total, err := ParseTimestamp(timestamp)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(total + seconds), nil
}

// OffsetLine shifts a single parsed line, leaving separator and text
// untouched.
func OffsetLine(line Line, seconds int) Line {
	line.Seconds += seconds
	return line
}

// Shift applies the offset to every line, dropping lines whose new start
// time falls before 00:00:00. Order is preserved; no line is added or
// duplicated.
func Shift(lines []Line, seconds int) []Line {
	shifted := make([]Line, 0, len(lines))
	for _, line := range lines {
		line = OffsetLine(line, seconds)
		if line.Seconds < 0 {
			continue
		}
		shifted = append(shifted, line)
	}
	return shifted
}
