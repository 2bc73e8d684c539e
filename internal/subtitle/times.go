package subtitle

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseInterval splits a timing line on the first arrow and parses both
// sides.
func ParseInterval(line string) (Interval, error) {
	startText, endText, ok := strings.Cut(line, Arrow)
	if !ok {
		return Interval{}, fmt.Errorf(
			"%w: no %q separator",
			ErrInvalidTimestamp,
			Arrow,
		)
	}
	start, err := ParseTimestamp(startText)
	if err != nil {
		return Interval{}, fmt.Errorf("start: %w", err)
	}
	end, err := ParseTimestamp(endText)
	if err != nil {
		return Interval{}, fmt.Errorf("end: %w", err)
	}
	return Interval{Start: start, End: end}, nil
}

// formats as "start,end" in seconds with two decimals
func (iv Interval) String() string {
	return fmt.Sprintf("%.2f,%.2f", iv.Start.Seconds(), iv.End.Seconds())
}

// ExtractTimes writes one "start,end" line to w for every timing line in r,
// in file order, and returns how many it wrote. Other lines are ignored.
func ExtractTimes(r io.Reader, w io.Writer) (int, error) {
	scanner := newLineScanner(r)
	count := 0
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if !IsTimingLine(line) {
			continue
		}

		iv, err := ParseInterval(line)
		if err != nil {
			return count, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		if _, err := fmt.Fprintln(w, iv); err != nil {
			return count, fmt.Errorf("failed to write interval: %w", err)
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("error reading subtitle file: %w", err)
	}

	return count, nil
}

// ExtractTimesFile runs ExtractTimes over the file at path.
func ExtractTimesFile(path string, w io.Writer) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ExtractTimes(file, w)
}
