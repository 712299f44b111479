// Package docrepo exposes a read-only content repository over a tree of
// Markdown documents: list, slug lookup, category filter, full-text search
// over titles and descriptions, sibling navigation, related documents and
// category aggregation.
//
// The repository is an explicit object constructed once at process start and
// injected into consumers; there is no package-level state. Missing or
// malformed content degrades to empty results and a built-in fallback
// dataset, never to errors at the API boundary.
package docrepo

import (
	"context"
	"io/fs"
	"os"

	"github.com/goliatone/go-docrepo/internal/catalog"
	"github.com/goliatone/go-docrepo/internal/index"
	"github.com/goliatone/go-docrepo/internal/logging"
	"github.com/goliatone/go-docrepo/internal/logging/console"
	"github.com/goliatone/go-docrepo/internal/logging/gologger"
	"github.com/goliatone/go-docrepo/internal/markdown"
	"github.com/goliatone/go-docrepo/internal/query"
	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// Repository is the concrete content repository. It satisfies
// interfaces.ContentRepository.
type Repository struct {
	cfg    Config
	logger interfaces.Logger
	engine *query.Engine
	nav    []interfaces.NavGroup
}

var _ interfaces.ContentRepository = (*Repository)(nil)

// Option customises repository construction.
type Option func(*options)

type options struct {
	fsys     fs.FS
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
}

// WithFilesystem overrides the filesystem the repository reads from. Useful
// for tests (fstest.MapFS) and embedded content (embed.FS).
func WithFilesystem(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithLoggerProvider supplies a logger provider, bypassing the one selected
// by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) { o.provider = provider }
}

// WithParser overrides the Markdown parser used to render document bodies.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(o *options) { o.parser = parser }
}

// New constructs a Repository from configuration. A missing content
// directory is not a construction error; the first query serves the fallback
// dataset instead, so the consuming application keeps running.
func New(cfg Config, opts ...Option) (*Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	provider := o.provider
	if provider == nil {
		built, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	fsys := o.fsys
	if fsys == nil {
		fsys = os.DirFS(cfg.ContentDir)
	}

	cat := catalog.New(fsys, catalog.Config{
		Pattern:          cfg.Pattern,
		ExcludeBasenames: cfg.Exclude.Basenames,
		ExcludePrefixes:  cfg.Exclude.Prefixes,
		Logger:           logging.ModuleLogger(provider, logging.CatalogModule),
	})

	idx := index.New(fsys, cat, index.Config{
		Cache:          cfg.Cache.Enabled,
		WordsPerMinute: cfg.Reading.WordsPerMinute,
		Logger:         logging.ModuleLogger(provider, logging.IndexModule),
	})

	parser := o.parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Parser.Extensions,
			Sanitize:   cfg.Parser.Sanitize,
			HardWraps:  cfg.Parser.HardWraps,
			SafeMode:   cfg.Parser.SafeMode,
		})
	}

	navLogger := logging.ModuleLogger(provider, logging.NavModule)

	return &Repository{
		cfg:    cfg,
		logger: logging.ModuleLogger(provider, logging.RootModule),
		engine: query.New(idx, parser, logging.ModuleLogger(provider, logging.QueryModule)),
		nav:    buildNavigation(cfg.Navigation, navLogger),
	}, nil
}

// GetAllContent returns every document summary in stable order. The order is
// deterministic across calls and is the ordering basis for navigation.
func (r *Repository) GetAllContent(ctx context.Context) []interfaces.DocumentSummary {
	return r.engine.All(ctx)
}

// GetContentBySlug returns the full document for slug, or nil when the slug
// is unknown or malformed.
func (r *Repository) GetContentBySlug(ctx context.Context, slug string) *interfaces.Document {
	return r.engine.GetBySlug(ctx, slug)
}

// GetContentByCategory returns the summaries belonging to category, or an
// empty slice for unknown categories.
func (r *Repository) GetContentByCategory(ctx context.Context, category string) []interfaces.DocumentSummary {
	return r.engine.GetByCategory(ctx, category)
}

// SearchContent matches query case-insensitively against titles and
// descriptions. Queries shorter than two characters after trimming return an
// empty slice.
func (r *Repository) SearchContent(ctx context.Context, query string) []interfaces.DocumentSummary {
	return r.engine.Search(ctx, query)
}

// GetCategories aggregates the corpus by category with humanized titles.
func (r *Repository) GetCategories(ctx context.Context) []interfaces.CategorySummary {
	return r.engine.GetCategories(ctx)
}

// GetRelatedContent resolves a document's declared related slugs into
// summaries, silently dropping any that no longer resolve.
func (r *Repository) GetRelatedContent(ctx context.Context, slug string) []interfaces.DocumentSummary {
	return r.engine.GetRelated(ctx, slug)
}

// GetNavigation returns the static site-map structure declared in
// configuration. It is computed once at construction.
func (r *Repository) GetNavigation() []interfaces.NavGroup {
	out := make([]interfaces.NavGroup, len(r.nav))
	copy(out, r.nav)
	return out
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Provider {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		minLevel := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &minLevel}), nil
	}
}
