package subtitle

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractTimes(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:03,500
Hello, world!

2
00:01:02,50 --> 00:01:04,75
This is a test.
With multiple lines.

3
01:00:00:00 --> 01:00:01:05
Final subtitle.
`
	var out bytes.Buffer
	count, err := ExtractTimes(strings.NewReader(content), &out)
	if err != nil {
		t.Fatalf("ExtractTimes error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 intervals, got %d", count)
	}

	want := "1.00,3.50\n62.50,64.75\n3600.00,3601.05\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTimesNoTimingLines(t *testing.T) {
	content := "1\nHello\n\n2\n00:00:01,00->00:00:02,00\nno arrow with spaces\n"
	var out bytes.Buffer
	count, err := ExtractTimes(strings.NewReader(content), &out)
	if err != nil {
		t.Fatalf("ExtractTimes error: %v", err)
	}
	if count != 0 || out.Len() != 0 {
		t.Errorf("expected no output, got %d intervals: %q", count, out.String())
	}
}

func TestExtractTimesCountsArrowLines(t *testing.T) {
	lines := []string{
		"WEBVTT-ish header",
		"00:00:00,10 --> 00:00:00,20",
		"random text",
		"00:00:00,30 --> 00:00:00,40",
		"",
		"00:00:00,50 --> 00:00:00,60",
		"trailing",
	}
	var out bytes.Buffer
	count, err := ExtractTimes(strings.NewReader(strings.Join(lines, "\n")), &out)
	if err != nil {
		t.Fatalf("ExtractTimes error: %v", err)
	}
	got := strings.Count(out.String(), "\n")
	if count != 3 || got != 3 {
		t.Errorf("expected 3 output lines, got count=%d lines=%d", count, got)
	}
}

func TestExtractTimesSkipsBOM(t *testing.T) {
	content := "\ufeff00:00:01,00 --> 00:00:02,00\r\n"
	var out bytes.Buffer
	if _, err := ExtractTimes(strings.NewReader(content), &out); err != nil {
		t.Fatalf("ExtractTimes error: %v", err)
	}
	if out.String() != "1.00,2.00\n" {
		t.Errorf("got %q, want %q", out.String(), "1.00,2.00\n")
	}
}

func TestExtractTimesParseError(t *testing.T) {
	content := "1\n00:00:01,00 --> 00:00:02,00\nok\n\n2\n00:00:xx,00 --> 00:00:04,00\nbad\n"
	var out bytes.Buffer
	count, err := ExtractTimes(strings.NewReader(content), &out)
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if parseErr.Line != 6 {
		t.Errorf("expected line 6, got %d", parseErr.Line)
	}
	if parseErr.Text != "00:00:xx,00 --> 00:00:04,00" {
		t.Errorf("expected offending line text, got %q", parseErr.Text)
	}
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("expected ErrInvalidTimestamp in chain, got: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 interval before the error, got %d", count)
	}
}

func TestExtractTimesFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.srt")
	_, err := ExtractTimesFile(path, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "failed to open subtitle file: ") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestExtractTimesFile(t *testing.T) {
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	content := "1\n00:00:01,000 --> 00:00:03,500\nHello\n\n"
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	var out bytes.Buffer
	count, err := ExtractTimesFile(srtPath, &out)
	if err != nil {
		t.Fatalf("ExtractTimesFile error: %v", err)
	}
	if count != 1 || out.String() != "1.00,3.50\n" {
		t.Errorf("got count=%d output=%q", count, out.String())
	}
}

func TestIntervalString(t *testing.T) {
	iv, err := ParseInterval("00:00:01,000 --> 00:00:03,500")
	if err != nil {
		t.Fatalf("ParseInterval error: %v", err)
	}
	if got := iv.String(); got != "1.00,3.50" {
		t.Errorf("got %q, want %q", got, "1.00,3.50")
	}
}
