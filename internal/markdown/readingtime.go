package markdown

import "strings"

// DefaultWordsPerMinute is the reading speed used when configuration leaves
// the value unset.
const DefaultWordsPerMinute = 225

// ReadingTime estimates reading duration in whole minutes for a Markdown
// body. The estimate is word-count based and rounds up, so any non-empty
// body yields at least one minute and longer bodies never report less time
// than shorter ones.
func ReadingTime(body []byte, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}

	words := len(strings.Fields(string(body)))
	if words == 0 {
		return 0
	}

	return (words + wordsPerMinute - 1) / wordsPerMinute
}
