// Package query implements the read operations exposed by the content
// repository: slug lookup, category filter, search, related resolution and
// category aggregation. Every operation is derived from the index snapshot;
// only the single-document lookup touches disk, to fetch the full body.
package query

import (
	"context"
	"strings"
	"unicode/utf8"

	sluglib "github.com/goliatone/go-slug"

	"github.com/goliatone/go-docrepo/internal/index"
	"github.com/goliatone/go-docrepo/internal/logging"
	"github.com/goliatone/go-docrepo/internal/markdown"
	"github.com/goliatone/go-docrepo/internal/nav"
	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// minQueryLength is the relevance floor: trimmed queries shorter than this
// return no results instead of matching the whole corpus.
const minQueryLength = 2

// Engine answers queries over the content index.
type Engine struct {
	index  *index.Index
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

// New constructs an Engine. A nil parser falls back to the goldmark defaults.
func New(idx *index.Index, parser interfaces.MarkdownParser, logger interfaces.Logger) *Engine {
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Engine{
		index:  idx,
		parser: parser,
		logger: logger,
	}
}

// All returns every document summary in stable order.
func (e *Engine) All(ctx context.Context) []interfaces.DocumentSummary {
	return e.index.All(ctx)
}

// GetBySlug returns the full document for a slug, or nil when the slug is
// unknown or malformed. Malformed input (traversal attempts, control
// characters, stray separators) is a "not found", never an error, and never
// reaches the filesystem.
func (e *Engine) GetBySlug(ctx context.Context, raw string) *interfaces.Document {
	slug, ok := NormalizeSlug(raw)
	if !ok {
		return nil
	}

	summaries := e.index.All(ctx)
	summary, found := findSummary(summaries, slug)
	if !found {
		return nil
	}

	source, err := e.index.Load(ctx, slug)
	if err != nil || source == nil {
		e.logger.Error("document vanished between index and load", "slug", slug, "error", err)
		return nil
	}

	html, err := e.parser.Parse(source.Body)
	if err != nil {
		e.logger.Error("document body failed to render", "slug", slug, "error", err)
		return nil
	}

	prev, next := nav.Siblings(slug, filterCategory(summaries, summary.Category))

	return &interfaces.Document{
		DocumentSummary: summary,
		Content:         string(html),
		TOC:             markdown.ExtractTOC(source.Body),
		Prev:            prev,
		Next:            next,
		Related:         resolveRelatedSlugs(summary, summaries),
	}
}

// GetByCategory returns the summaries whose category matches exactly, in
// stable order. Unknown categories yield an empty slice.
func (e *Engine) GetByCategory(ctx context.Context, category string) []interfaces.DocumentSummary {
	return filterCategory(e.index.All(ctx), category)
}

// Search returns summaries whose title or description contains the query,
// case-insensitively. Pure substring containment, no tokenization; results
// keep the stable listing order. Trimmed queries shorter than two characters
// return an empty slice by contract.
func (e *Engine) Search(ctx context.Context, query string) []interfaces.DocumentSummary {
	needle := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(needle) < minQueryLength {
		return []interfaces.DocumentSummary{}
	}

	results := []interfaces.DocumentSummary{}
	for _, summary := range e.index.All(ctx) {
		if strings.Contains(strings.ToLower(summary.Title), needle) ||
			strings.Contains(strings.ToLower(summary.Description), needle) {
			results = append(results, summary)
		}
	}
	return results
}

// GetCategories aggregates the corpus by category. Categories appear in the
// order their first document appears in the stable listing, with humanized
// titles; empty categories cannot appear since membership is derived.
func (e *Engine) GetCategories(ctx context.Context) []interfaces.CategorySummary {
	counts := map[string]int{}
	order := []string{}

	for _, summary := range e.index.All(ctx) {
		if _, seen := counts[summary.Category]; !seen {
			order = append(order, summary.Category)
		}
		counts[summary.Category]++
	}

	categories := make([]interfaces.CategorySummary, 0, len(order))
	for _, slug := range order {
		categories = append(categories, interfaces.CategorySummary{
			Slug:  slug,
			Title: markdown.HumanizeSegment(slug),
			Count: counts[slug],
		})
	}
	return categories
}

// GetRelated resolves a document's declared related slugs into summaries.
// Slugs that no longer resolve are dropped silently; unknown input yields an
// empty slice.
func (e *Engine) GetRelated(ctx context.Context, raw string) []interfaces.DocumentSummary {
	results := []interfaces.DocumentSummary{}

	slug, ok := NormalizeSlug(raw)
	if !ok {
		return results
	}

	summaries := e.index.All(ctx)
	summary, found := findSummary(summaries, slug)
	if !found {
		return results
	}

	for _, related := range resolveRelatedSlugs(summary, summaries) {
		if match, ok := findSummary(summaries, related); ok {
			results = append(results, match)
		}
	}
	return results
}

// NormalizeSlug lowercases and validates caller-supplied slug input. Every
// path segment must be a valid slug under the shared normalization rules, so
// traversal sequences, empty segments and control characters all fail
// validation and resolve to "not found" upstream.
func NormalizeSlug(raw string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return "", false
	}

	segments := strings.Split(trimmed, "/")
	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			return "", false
		}
		if !sluglib.IsValid(segment) {
			return "", false
		}
	}

	return strings.Join(segments, "/"), true
}

func findSummary(summaries []interfaces.DocumentSummary, slug string) (interfaces.DocumentSummary, bool) {
	for _, summary := range summaries {
		if summary.Slug == slug {
			return summary, true
		}
	}
	return interfaces.DocumentSummary{}, false
}

func filterCategory(summaries []interfaces.DocumentSummary, category string) []interfaces.DocumentSummary {
	out := []interfaces.DocumentSummary{}
	for _, summary := range summaries {
		if summary.Category == category {
			out = append(out, summary)
		}
	}
	return out
}

// resolveRelatedSlugs filters a summary's declared related list down to
// slugs that exist, dropping self-references and duplicates while keeping
// the declared order. The result is never nil.
func resolveRelatedSlugs(summary interfaces.DocumentSummary, summaries []interfaces.DocumentSummary) []string {
	resolved := []string{}
	seen := map[string]struct{}{}

	for _, raw := range summary.Related {
		related, ok := NormalizeSlug(raw)
		if !ok || related == summary.Slug {
			continue
		}
		if _, dup := seen[related]; dup {
			continue
		}
		if _, exists := findSummary(summaries, related); !exists {
			continue
		}
		seen[related] = struct{}{}
		resolved = append(resolved, related)
	}
	return resolved
}
