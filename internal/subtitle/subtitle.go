package subtitle

import (
	"bufio"
	"io"
	"strings"

	"github.com/dimchansky/utfbom"
)

// separates the start and end timestamps of a timing line
const Arrow = " --> "

// longest line either reader accepts
const maxLineSize = 1024 * 1024

// start/end pair parsed from a single timing line
type Interval struct {
	Start Timestamp
	End   Timestamp
}

// IsTimingLine reports whether line holds an interval.
func IsTimingLine(line string) bool {
	return strings.Contains(line, Arrow)
}

// line scanner shared by both readers, tolerant of a leading UTF-8 BOM
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(utfbom.SkipOnly(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}
