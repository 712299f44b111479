package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// ParseFrontMatter extracts the optional YAML metadata block and the Markdown
// body from the provided source bytes. Documents without a front matter block
// return a zero-value envelope and the body unchanged.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

type frontMatterEnvelope struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Difficulty  string         `yaml:"difficulty"`
	Tags        []string       `yaml:"tags"`
	Related     []string       `yaml:"related"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	return interfaces.FrontMatter{
		Title:       env.Title,
		Description: env.Description,
		Difficulty:  normalizeDifficulty(env.Difficulty),
		Tags:        dedupeStrings(env.Tags),
		Related:     dedupeStrings(env.Related),
		Custom:      env.Custom,
	}
}

// normalizeDifficulty keeps the difficulty enum closed: anything outside the
// known levels is dropped rather than surfaced verbatim.
func normalizeDifficulty(value string) string {
	switch value {
	case interfaces.DifficultyBeginner, interfaces.DifficultyIntermediate, interfaces.DifficultyAdvanced:
		return value
	default:
		return ""
	}
}

func dedupeStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
