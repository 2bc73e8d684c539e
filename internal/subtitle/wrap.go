package subtitle

import (
	"strings"
	"unicode/utf8"
)

// line width used when reflowing replacement text
const DefaultWidth = 50

// Wrap reflows text on single spaces so that a physical line, counting the
// space written after every token, stays within width. Tokens are never
// split; one longer than width sits alone on its line. The final token keeps
// its trailing space.
func Wrap(text string, width int) string {
	var sb strings.Builder
	count := 0

	for _, token := range strings.Split(text, " ") {
		n := utf8.RuneCountInString(token) + 1
		if count > 0 && count+n > width {
			sb.WriteByte('\n')
			count = 0
		}
		sb.WriteString(token)
		sb.WriteByte(' ')
		count += n
	}

	return sb.String()
}
