package subtitle

import (
	"errors"
	"fmt"
)

var (
	// timing line whose timestamps do not split into four numeric parts
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// replacement source ran out before the original file's blocks did
	ErrReplacementExhausted = errors.New("replacement lines exhausted")
)

// ParseError locates a timing line that could not be converted.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
