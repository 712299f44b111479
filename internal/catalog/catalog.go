// Package catalog discovers eligible Markdown files beneath a content root.
//
// The catalog is deliberately forgiving: an unreadable subtree is skipped and
// logged rather than failing the whole walk, so one bad directory never takes
// down the index. Only an unavailable root surfaces as an error, which the
// index layer maps onto its fallback dataset.
package catalog

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	sluglib "github.com/goliatone/go-slug"

	"github.com/goliatone/go-docrepo/internal/logging"
	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// ErrRootUnavailable reports that the content root itself cannot be
// enumerated (missing directory, permission error at the top level).
var ErrRootUnavailable = errors.New("catalog: content root unavailable")

const markdownExt = ".md"

// Entry pairs a discovered file with its derived slug.
type Entry struct {
	// Path is the slash-separated path relative to the content root.
	Path string
	// Slug is the path without extension, lowercased.
	Slug string
}

// Config controls file discovery.
type Config struct {
	// Pattern limits discovered files to those matching the glob (defaults to "*.md").
	Pattern string
	// ExcludeBasenames lists file names skipped case-insensitively.
	ExcludeBasenames []string
	// ExcludePrefixes lists file name prefixes skipped case-insensitively.
	ExcludePrefixes []string
	Logger          interfaces.Logger
}

// Catalog walks a filesystem and yields content entries in a stable order.
type Catalog struct {
	fsys     fs.FS
	pattern  string
	excluded map[string]struct{}
	prefixes []string
	logger   interfaces.Logger
}

// New constructs a Catalog over the provided filesystem.
func New(fsys fs.FS, cfg Config) *Catalog {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*" + markdownExt
	}

	excluded := make(map[string]struct{}, len(cfg.ExcludeBasenames))
	for _, name := range cfg.ExcludeBasenames {
		if trimmed := strings.ToLower(strings.TrimSpace(name)); trimmed != "" {
			excluded[trimmed] = struct{}{}
		}
	}

	prefixes := make([]string, 0, len(cfg.ExcludePrefixes))
	for _, prefix := range cfg.ExcludePrefixes {
		if trimmed := strings.ToLower(strings.TrimSpace(prefix)); trimmed != "" {
			prefixes = append(prefixes, trimmed)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Catalog{
		fsys:     fsys,
		pattern:  pattern,
		excluded: excluded,
		prefixes: prefixes,
		logger:   logger,
	}
}

// ListDocumentFiles walks the content root recursively and returns every
// eligible Markdown file sorted lexicographically by relative path. The
// ordering is the stable order used for listing and sibling navigation.
func (c *Catalog) ListDocumentFiles(ctx context.Context) ([]Entry, error) {
	if c.fsys == nil {
		return nil, ErrRootUnavailable
	}

	var entries []Entry

	walkErr := fs.WalkDir(c.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return ErrRootUnavailable
			}
			// Absorb unreadable subtrees so the rest of the index survives.
			c.logger.Warn("catalog skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if !c.eligible(p) {
			return nil
		}

		slug, ok := SlugForPath(p)
		if !ok {
			c.logger.Warn("catalog skipping file with unusable name", "path", p)
			return nil
		}

		entries = append(entries, Entry{
			Path: p,
			Slug: slug,
		})
		return nil
	})

	if walkErr != nil {
		if errors.Is(walkErr, ErrRootUnavailable) {
			return nil, walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// fs.WalkDir reports open errors through the callback; anything else
		// reaching here is a top-level enumeration failure.
		c.logger.Warn("catalog walk aborted", "error", walkErr)
		return nil, ErrRootUnavailable
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

func (c *Catalog) eligible(p string) bool {
	base := strings.ToLower(path.Base(p))

	if !strings.HasSuffix(base, markdownExt) {
		return false
	}
	if _, skip := c.excluded[base]; skip {
		return false
	}
	for _, prefix := range c.prefixes {
		if strings.HasPrefix(base, prefix) {
			return false
		}
	}

	match, err := path.Match(c.pattern, base)
	if err != nil || !match {
		return false
	}
	return true
}

// SlugForPath derives the canonical slug for a relative file path: slash
// separators, extension stripped, each segment normalized into kebab-case
// through the shared slug rules (underscores and mixed case fold into
// hyphenated lowercase). Returns ok=false when a segment cannot produce a
// valid slug; such files are not indexable since no lookup could ever
// address them.
func SlugForPath(p string) (string, bool) {
	trimmed := strings.Trim(strings.TrimSuffix(p, path.Ext(p)), "/")
	if trimmed == "" {
		return "", false
	}

	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		normalized, err := sluglib.Normalize(segment)
		if err != nil || normalized == "" {
			return "", false
		}
		segments[i] = normalized
	}
	return strings.Join(segments, "/"), true
}
