package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	lineRegex      = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})([:=])(.*)$`)
	timestampRegex = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})$`)
)

// ParseLine parses a single TMPlayer line: a H+:MM:SS timestamp, a ':' or
// '=' separator, then free text. The split is anchored on the timestamp
// prefix, so the text may itself contain ':' or '=' characters.
func ParseLine(raw string) (Line, error) {
	matches := lineRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Line{}, fmt.Errorf("%w: %q", ErrMalformedLine, raw)
	}

	seconds, err := timestampSeconds(matches[1], matches[2], matches[3])
	if err != nil {
		return Line{}, fmt.Errorf("%w: %q: %v", ErrMalformedLine, raw, err)
	}

	return Line{
		Seconds:   seconds,
		Separator: matches[4][0],
		Text:      matches[5],
	}, nil
}

// ParseTimestamp converts a H+:MM:SS timestamp to flattened seconds:
// hour*3600 + minute*60 + second.
func ParseTimestamp(timestamp string) (int, error) {
	matches := timestampRegex.FindStringSubmatch(timestamp)
	if matches == nil {
		return 0, fmt.Errorf("%w: bad timestamp %q", ErrMalformedLine, timestamp)
	}

	seconds, err := timestampSeconds(matches[1], matches[2], matches[3])
	if err != nil {
		return 0, fmt.Errorf("%w: bad timestamp %q: %v", ErrMalformedLine, timestamp, err)
	}
	return seconds, nil
}

func timestampSeconds(hours, minutes, seconds string) (int, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, fmt.Errorf("hour %s out of range", hours)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}

	if m > 59 {
		return 0, fmt.Errorf("minute %02d out of range", m)
	}
	if s > 59 {
		return 0, fmt.Errorf("second %02d out of range", s)
	}

	return h*3600 + m*60 + s, nil
}

// ReadFile parses a TMPlayer subtitle file into lines, in file order. Any
// line that does not match the format fails the whole read.
func ReadFile(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	var lines []Line
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		raw := scanner.Text()
		lineNum++

		if lineNum == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}

		line, err := ParseLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle file: %w", err)
	}

	return lines, nil
}
