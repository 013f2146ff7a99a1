package subtitle

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// WriteFile writes lines in TMPlayer format to a newly created file, one
// entry per line. It refuses to overwrite: if path already exists the
// error wraps ErrOutputExists and the existing file is left untouched.
func WriteFile(path string, lines []Line) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line.String() + "\n"); err != nil {
			file.Close()
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return file.Close()
}
