package index

import (
	"sort"
	"time"

	"github.com/goliatone/go-docrepo/internal/markdown"
	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// fallbackDocuments is the built-in dataset substituted when the content root
// cannot be enumerated. The bodies go through the same parsing pipeline as
// real files so every derived field stays consistent with normal operation.
var fallbackDocuments = map[string]string{
	"getting-started/introduction": `# Introduction

**Purpose:** Explain what this documentation covers and how it is organized.

The content tree for this site could not be loaded, so you are reading the
built-in placeholder set. Check that the configured content directory exists
and is readable by the process.

## How content is organized

Documents live in category directories; the directory name becomes the
category and the file path becomes the document slug.
`,
	"getting-started/content-layout": `# Content Layout

**Purpose:** Describe the expected directory layout for content files.

Each Markdown file under the content root becomes one document. Files named
readme.md, overview.md or documentation-index.md are navigational aids and
are not indexed.

## Slugs

Slugs mirror the relative file path without the extension, lowercased.
`,
}

// fallbackModified pins the dataset's timestamp so fallback snapshots are
// bit-identical across processes.
var fallbackModified = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func fallbackSnapshot(wordsPerMinute int, logger interfaces.Logger) *snapshot {
	slugs := make([]string, 0, len(fallbackDocuments))
	for slug := range fallbackDocuments {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	snap := &snapshot{
		summaries: make([]interfaces.DocumentSummary, 0, len(slugs)),
		paths:     make(map[string]string, len(slugs)),
		source:    SourceFallback,
	}

	idx := Index{wpm: wordsPerMinute}
	for _, slug := range slugs {
		doc, err := markdown.BuildDocument(slug+".md", slug, []byte(fallbackDocuments[slug]), fallbackModified)
		if err != nil {
			logger.Error("fallback document failed to parse", "slug", slug, "error", err)
			continue
		}
		snap.summaries = append(snap.summaries, idx.summarize(doc))
		snap.paths[slug] = ""
	}

	return snap
}

func loadFallbackDocument(slug string) (*interfaces.SourceDocument, error) {
	body, ok := fallbackDocuments[slug]
	if !ok {
		return nil, nil
	}
	return markdown.BuildDocument(slug+".md", slug, []byte(body), fallbackModified)
}
