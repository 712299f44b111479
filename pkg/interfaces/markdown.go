package interfaces

import "time"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across requests without locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// SourceDocument represents a single Markdown file after the head has been
// parsed but before the body is rendered. BodyHTML is left empty so callers
// can render lazily; detail lookups are the only path that pays for HTML.
type SourceDocument struct {
	FilePath     string
	Slug         string
	FrontMatter  FrontMatter
	Title        string
	Description  string
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
}

// FrontMatter models the optional YAML metadata block at the top of a
// document. Every field is optional; Title and Description override the
// values extracted from the body when present.
type FrontMatter struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Difficulty  string         `yaml:"difficulty"`
	Tags        []string       `yaml:"tags"`
	Related     []string       `yaml:"related"`
	Custom      map[string]any `yaml:",inline"`
}
