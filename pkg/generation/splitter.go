package generation

import "strings"

// MessageLimit is the delivery size threshold for one outbound message.
const MessageLimit = 4000

// SplitMessage splits text into message-sized segments. Splits happen
// at the last line boundary at or before the limit; a single line
// longer than the limit is emitted whole in its own segment rather
// than cut mid-line. Concatenating the segments reproduces the input
// exactly.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || len(text) <= limit {
		return []string{text}
	}

	var segments []string
	rest := text
	for len(rest) > limit {
		cut := strings.LastIndexByte(rest[:limit], '\n')
		if cut < 0 {
			// The current line overruns the limit; keep it intact.
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				break
			}
			cut = end
		}
		segments = append(segments, rest[:cut+1])
		rest = rest[cut+1:]
	}
	if rest != "" {
		segments = append(segments, rest)
	}
	return segments
}
