package telegram

import (
	"strings"
	"unicode/utf8"
)

// maxMessageLength is the Bot API limit for one message, in runes.
const maxMessageLength = 4096

// chunkLines packs whole lines of text into chunks of at most limit runes.
// A line longer than limit is cut at rune boundaries.
func chunkLines(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		cur    strings.Builder
		n      int
	)
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			n = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		size := utf8.RuneCountInString(line)
		if n+size > limit {
			flush()
		}
		for size > limit {
			head, tail := cutRunes(line, limit)
			chunks = append(chunks, head)
			line, size = tail, size-limit
		}
		cur.WriteString(line)
		n += size
	}
	flush()
	return chunks
}

func cutRunes(s string, n int) (string, string) {
	i := 0
	for n > 0 && i < len(s) {
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
		n--
	}
	return s[:i], s[i:]
}
