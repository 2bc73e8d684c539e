package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// replacement line meaning no usable text for its block
	NullSentinel = "null"

	// written in place of a block whose replacement is NullSentinel
	DefaultPlaceholder = "[Uninteligible]"
)

// RewriteOptions controls how replacement text is laid out.
type RewriteOptions struct {
	Width       int
	Placeholder string
}

func DefaultRewriteOptions() RewriteOptions {
	return RewriteOptions{
		Width:       DefaultWidth,
		Placeholder: DefaultPlaceholder,
	}
}

func (o RewriteOptions) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", o.Width)
	}
	if strings.TrimSpace(o.Placeholder) == "" {
		return fmt.Errorf("placeholder must not be empty")
	}
	return nil
}

// RewriteStats counts what a rewrite did.
type RewriteStats struct {
	Blocks       int // replacement lines consumed
	Placeholders int // blocks rendered as the placeholder
}

// position of the walk relative to the current block
type rewriteState int

const (
	// copying index and timing lines through
	stateBefore rewriteState = iota
	// the line after a timing line; its replacement is written here
	stateInSubs
	// dropping superseded text until the blank separator
	stateAfter
)

func (s rewriteState) String() string {
	switch s {
	case stateBefore:
		return "before"
	case stateInSubs:
		return "in_subs"
	case stateAfter:
		return "after"
	default:
		return fmt.Sprintf("rewriteState(%d)", int(s))
	}
}

// sequential reader over replacement lines, advanced once per block
type replacementCursor struct {
	scanner *bufio.Scanner
	read    int
}

func newReplacementCursor(r io.Reader) *replacementCursor {
	return &replacementCursor{scanner: newLineScanner(r)}
}

func (c *replacementCursor) next() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading replacement lines: %w", err)
		}
		return "", fmt.Errorf(
			"%w: no replacement for block %d",
			ErrReplacementExhausted,
			c.read+1,
		)
	}
	c.read++
	return strings.TrimSpace(c.scanner.Text()), nil
}

type rewriter struct {
	opts         RewriteOptions
	replacements *replacementCursor
	out          io.Writer
	state        rewriteState
	stats        RewriteStats
}

// step feeds one trimmed line of the original file through the state
// machine.
func (rw *rewriter) step(line string) error {
	switch rw.state {
	case stateBefore:
		if err := rw.emit(line); err != nil {
			return err
		}
		if IsTimingLine(line) {
			rw.state = stateInSubs
		}

	case stateInSubs:
		text, err := rw.replacements.next()
		if err != nil {
			return err
		}
		if text == NullSentinel {
			rw.stats.Placeholders++
			text = rw.opts.Placeholder
		} else {
			text = Wrap(text, rw.opts.Width)
		}
		if err := rw.emit(text); err != nil {
			return err
		}
		rw.stats.Blocks++
		rw.state = stateAfter

	case stateAfter:
		if line == "" {
			if err := rw.emit(""); err != nil {
				return err
			}
			rw.state = stateBefore
		}

	default:
		return fmt.Errorf("unknown rewrite state %s", rw.state)
	}
	return nil
}

func (rw *rewriter) emit(line string) error {
	if _, err := io.WriteString(rw.out, line+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Rewrite copies the original subtitle document to w, replacing the text of
// each block with the next line from replacements. Index and timing lines
// and blank separators pass through; the original text lines are dropped.
func Rewrite(
	original, replacements io.Reader,
	w io.Writer,
	opts RewriteOptions,
) (RewriteStats, error) {
	if err := opts.Validate(); err != nil {
		return RewriteStats{}, err
	}

	rw := &rewriter{
		opts:         opts,
		replacements: newReplacementCursor(replacements),
		out:          w,
		state:        stateBefore,
	}

	scanner := newLineScanner(original)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := rw.step(strings.TrimSpace(scanner.Text())); err != nil {
			return rw.stats, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return rw.stats, fmt.Errorf("error reading subtitle file: %w", err)
	}

	return rw.stats, nil
}

// RewriteFiles runs Rewrite over the files at the given paths.
func RewriteFiles(
	originalPath, replacementsPath string,
	w io.Writer,
	opts RewriteOptions,
) (RewriteStats, error) {
	original, err := os.Open(originalPath)
	if err != nil {
		return RewriteStats{}, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = original.Close()
	}()

	replacements, err := os.Open(replacementsPath)
	if err != nil {
		return RewriteStats{}, fmt.Errorf(
			"failed to open replacement lines: %w",
			err,
		)
	}
	defer func() {
		_ = replacements.Close()
	}()

	return Rewrite(original, replacements, w, opts)
}
