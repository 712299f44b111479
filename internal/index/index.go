// Package index builds and caches the in-memory list of document summaries
// that every query operates on.
package index

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-docrepo/internal/catalog"
	"github.com/goliatone/go-docrepo/internal/logging"
	"github.com/goliatone/go-docrepo/internal/markdown"
	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// Source tags where a snapshot came from. The public API collapses both onto
// a plain list; the tag keeps "did we degrade" observable for diagnostics.
type Source int

const (
	// SourceFilesystem marks a snapshot built from the content tree.
	SourceFilesystem Source = iota
	// SourceFallback marks the built-in dataset substituted when the content
	// root is missing or unreadable.
	SourceFallback
)

const lastUpdatedLayout = "2006-01-02"

// Config controls snapshot construction.
type Config struct {
	// Cache keeps the first snapshot for the process lifetime. When false
	// the filesystem is re-walked on every call.
	Cache          bool
	WordsPerMinute int
	Logger         interfaces.Logger
}

// Index materialises document summaries from a catalog and keeps an optional
// process-lifetime cache. Construction is guarded by a single-flight group so
// concurrent callers never observe a half-built snapshot.
type Index struct {
	fsys    fs.FS
	catalog *catalog.Catalog
	logger  interfaces.Logger
	wpm     int
	cache   bool

	group    singleflight.Group
	mu       sync.RWMutex
	snapshot *snapshot
}

type snapshot struct {
	summaries []interfaces.DocumentSummary
	// paths maps slug to the relative file path; fallback documents have no
	// path and load from the embedded dataset instead.
	paths  map[string]string
	source Source
}

// New constructs an Index over the provided filesystem and catalog.
func New(fsys fs.FS, cat *catalog.Catalog, cfg Config) *Index {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Index{
		fsys:    fsys,
		catalog: cat,
		logger:  logger,
		wpm:     cfg.WordsPerMinute,
		cache:   cfg.Cache,
	}
}

// All returns every document summary in stable order. The slice is a copy;
// callers can re-slice or sort it without corrupting the cache.
func (i *Index) All(ctx context.Context) []interfaces.DocumentSummary {
	summaries, _ := i.Snapshot(ctx)
	return summaries
}

// Snapshot returns the summaries along with the source tag.
func (i *Index) Snapshot(ctx context.Context) ([]interfaces.DocumentSummary, Source) {
	snap := i.current(ctx)
	out := make([]interfaces.DocumentSummary, len(snap.summaries))
	copy(out, snap.summaries)
	return out, snap.source
}

// Load re-reads a single document in full. The slug must already exist in
// the snapshot; unknown slugs return nil with no error since absence is not
// exceptional.
func (i *Index) Load(ctx context.Context, slug string) (*interfaces.SourceDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := i.current(ctx)
	path, ok := snap.paths[slug]
	if !ok {
		return nil, nil
	}

	if snap.source == SourceFallback {
		return loadFallbackDocument(slug)
	}

	return markdown.ReadDocument(i.fsys, path, slug)
}

func (i *Index) current(ctx context.Context) *snapshot {
	if i.cache {
		i.mu.RLock()
		snap := i.snapshot
		i.mu.RUnlock()
		if snap != nil {
			return snap
		}
	}

	value, _, _ := i.group.Do("snapshot", func() (any, error) {
		if i.cache {
			i.mu.RLock()
			snap := i.snapshot
			i.mu.RUnlock()
			if snap != nil {
				return snap, nil
			}
		}

		snap, complete := i.build(ctx)

		if i.cache && complete {
			i.mu.Lock()
			i.snapshot = snap
			i.mu.Unlock()
		}
		return snap, nil
	})

	return value.(*snapshot)
}

// build walks the catalog into a snapshot. The second return reports whether
// the snapshot may be cached: a walk aborted by context cancellation yields an
// empty, uncacheable snapshot so the next caller rebuilds against the real
// filesystem. Only a genuinely unavailable root substitutes the fallback
// dataset.
func (i *Index) build(ctx context.Context) (*snapshot, bool) {
	entries, err := i.catalog.ListDocumentFiles(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrRootUnavailable) {
			i.logger.Warn("content root unavailable, serving fallback dataset", "error", err)
			return fallbackSnapshot(i.wpm, i.logger), true
		}
		i.logger.Warn("content walk aborted", "error", err)
		return &snapshot{paths: map[string]string{}, source: SourceFilesystem}, false
	}

	snap := &snapshot{
		summaries: make([]interfaces.DocumentSummary, 0, len(entries)),
		paths:     make(map[string]string, len(entries)),
		source:    SourceFilesystem,
	}

	for _, entry := range entries {
		if _, exists := snap.paths[entry.Slug]; exists {
			// Slugs are globally unique; the first file in stable order wins.
			i.logger.Warn("duplicate slug skipped", "slug", entry.Slug, "path", entry.Path)
			continue
		}

		doc, err := markdown.ReadDocument(i.fsys, entry.Path, entry.Slug)
		if err != nil {
			msg := "skipping document that failed to parse"
			if markdown.IsReadError(err) {
				msg = "skipping unreadable document"
			}
			i.logger.Warn(msg, "path", entry.Path, "error", err)
			continue
		}

		snap.summaries = append(snap.summaries, i.summarize(doc))
		snap.paths[entry.Slug] = entry.Path
	}

	i.logger.Debug("content index built", "documents", len(snap.summaries))
	return snap, true
}

func (i *Index) summarize(doc *interfaces.SourceDocument) interfaces.DocumentSummary {
	return interfaces.DocumentSummary{
		Slug:        doc.Slug,
		Category:    CategoryOf(doc.Slug),
		Title:       doc.Title,
		Description: doc.Description,
		Metadata: interfaces.DocumentMetadata{
			ReadingTime: markdown.ReadingTime(doc.Body, i.wpm),
			LastUpdated: doc.LastModified.Format(lastUpdatedLayout),
			Difficulty:  doc.FrontMatter.Difficulty,
			Tags:        doc.FrontMatter.Tags,
		},
		Related: doc.FrontMatter.Related,
	}
}

// CategoryOf derives the category from a slug's first path segment. Category
// membership is never stored separately; the slug is the single source of
// truth.
func CategoryOf(slug string) string {
	if idx := strings.IndexByte(slug, '/'); idx > 0 {
		return slug[:idx]
	}
	return slug
}
