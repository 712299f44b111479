package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

// DocumentMeta carries the structured metadata read from a document body.
type DocumentMeta struct {
	Title       string
	Description string
}

var (
	titlePattern   = regexp.MustCompile(`^#\s+(.+?)\s*$`)
	purposePattern = regexp.MustCompile(`^\*\*Purpose:?\*\*:?\s*(.+?)\s*$`)
)

// ExtractMeta reads the title and description conventions from a Markdown
// body: the first level-1 heading becomes the title, the first
// "**Purpose:** ..." line becomes the description. Either may be absent;
// callers apply their own fallbacks. The function is pure so it can be
// exercised without filesystem fixtures.
func ExtractMeta(body []byte) DocumentMeta {
	meta := DocumentMeta{}

	for _, line := range strings.Split(string(body), "\n") {
		if meta.Title == "" {
			if m := titlePattern.FindStringSubmatch(line); m != nil {
				meta.Title = m[1]
				continue
			}
		}
		if meta.Description == "" {
			if m := purposePattern.FindStringSubmatch(line); m != nil {
				meta.Description = m[1]
			}
		}
		if meta.Title != "" && meta.Description != "" {
			break
		}
	}

	return meta
}

// HumanizeSegment turns a slug segment into a display label, e.g.
// "design-pattern" -> "Design Pattern".
func HumanizeSegment(segment string) string {
	trimmed := strings.TrimSpace(segment)
	if trimmed == "" {
		return ""
	}
	trimmed = strings.ReplaceAll(trimmed, "_", " ")
	trimmed = strings.ReplaceAll(trimmed, "-", " ")
	parts := strings.Fields(trimmed)
	for i, part := range parts {
		parts[i] = upperFirst(part)
	}
	return strings.Join(parts, " ")
}

// FallbackTitle humanizes the last slug segment for documents without a
// level-1 heading or front matter title.
func FallbackTitle(slug string) string {
	if slug == "" {
		return "Untitled"
	}
	segments := strings.Split(slug, "/")
	title := HumanizeSegment(segments[len(segments)-1])
	if title == "" {
		return "Untitled"
	}
	return title
}

func upperFirst(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
