package interfaces

import "context"

// Difficulty levels accepted in document front matter. Unknown values are
// dropped during parsing so the metadata enum stays closed.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// DocumentMetadata carries the derived, list-safe metadata for a document.
type DocumentMetadata struct {
	// ReadingTime is an estimate in whole minutes, always >= 0.
	ReadingTime int `json:"readingTime"`
	// LastUpdated is the file modification time formatted as YYYY-MM-DD.
	LastUpdated string   `json:"lastUpdated"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// DocumentSummary is the lightweight list projection of a document. It is
// assembled from the file path and the document head only; the rendered body
// is never attached to a summary.
type DocumentSummary struct {
	// Slug is the path-derived unique identifier (slash separated, no
	// extension, lowercase kebab segments).
	Slug string `json:"slug"`
	// Category is the first path segment of the slug.
	Category    string           `json:"category"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Metadata    DocumentMetadata `json:"metadata"`
	// Related lists slugs declared in the document's front matter. Kept on
	// the summary so related lookups never re-read files; consumers should
	// resolve them through GetRelatedContent rather than read them directly.
	Related []string `json:"-"`
}

// TOCEntry is a single heading in a document outline. Level is clamped to
// the 2..6 range; level-1 headings become the document title instead.
type TOCEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Document is the full detail view: the summary plus rendered body, heading
// outline, sibling navigation and resolved related slugs.
type Document struct {
	DocumentSummary

	// Content holds the rendered HTML body.
	Content string `json:"content"`
	// TOC is never nil; an empty slice means the body has no headings.
	TOC []TOCEntry `json:"toc"`
	// Prev and Next are slugs of the neighbouring documents within the same
	// category, nil at the boundaries.
	Prev *string `json:"prev,omitempty"`
	Next *string `json:"next,omitempty"`
	// Related carries only slugs that resolve to existing documents. Never
	// nil, never contains the document itself, never contains duplicates.
	Related []string `json:"related"`
}

// CategorySummary aggregates one category of the corpus.
type CategorySummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	// Count is the number of documents in the category, always > 0.
	Count int `json:"count"`
}

// NavItem is a single link in the static site navigation.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
}

// NavGroup clusters navigation items under a shared heading.
type NavGroup struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// ContentRepository is the read-only API surface consumed by presentation
// layers. Absence of a match is not an error: lookups return nil or empty
// slices, and internal read failures never escape as errors.
type ContentRepository interface {
	GetAllContent(ctx context.Context) []DocumentSummary
	GetContentBySlug(ctx context.Context, slug string) *Document
	GetContentByCategory(ctx context.Context, category string) []DocumentSummary
	SearchContent(ctx context.Context, query string) []DocumentSummary
	GetCategories(ctx context.Context) []CategorySummary
	GetRelatedContent(ctx context.Context, slug string) []DocumentSummary
	GetNavigation() []NavGroup
}
