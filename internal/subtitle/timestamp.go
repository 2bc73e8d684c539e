package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// offset into the media, e.g. 00:01:02,50
type Timestamp time.Duration

// ParseTimestamp reads H:M:S,F where ':' and ',' are interchangeable
// separators. A one or two digit fraction counts centiseconds; a longer one
// is a decimal fraction of a second, so both 00:00:03,50 and 00:00:03,500
// land on 3.5s.
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(strings.ReplaceAll(value, ",", ":"), ":")
	if len(parts) != 4 {
		return 0, fmt.Errorf(
			"%w %q: expected 4 components, got %d",
			ErrInvalidTimestamp,
			value,
			len(parts),
		)
	}

	var nums [4]int
	for i, part := range parts {
		if i == 3 && len(part) > 9 {
			// nanosecond resolution
			part = part[:9]
		}
		n, err := parseComponent(part)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, value, err)
		}
		nums[i] = n
	}

	var d time.Duration
	units := [3]time.Duration{time.Hour, time.Minute, time.Second}
	for i, unit := range units {
		if time.Duration(nums[i]) > (math.MaxInt64-d)/unit {
			return 0, fmt.Errorf("%w %q: out of range", ErrInvalidTimestamp, value)
		}
		d += time.Duration(nums[i]) * unit
	}
	frac := fraction(nums[3], min(len(parts[3]), 9))
	if d > math.MaxInt64-frac {
		return 0, fmt.Errorf("%w %q: out of range", ErrInvalidTimestamp, value)
	}

	return Timestamp(d + frac), nil
}

func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("empty component")
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric component %q", part)
		}
	}
	return strconv.Atoi(part)
}

func fraction(n, digits int) time.Duration {
	if digits <= 2 {
		return time.Duration(n) * 10 * time.Millisecond
	}
	scale := time.Duration(1)
	for i := 0; i < digits; i++ {
		scale *= 10
	}
	return time.Duration(n) * time.Second / scale
}

func (t Timestamp) Seconds() float64 {
	return time.Duration(t).Seconds()
}
