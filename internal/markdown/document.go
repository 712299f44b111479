package markdown

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

const documentReadFailedCode = "DOCUMENT_READ_FAILED"

// BuildDocument assembles a SourceDocument from raw file bytes. Front matter
// values win over body conventions; the humanized file name is the title of
// last resort so titles are never empty. BodyHTML is intentionally left empty
// so callers can render lazily.
func BuildDocument(path, slug string, source []byte, modified time.Time) (*interfaces.SourceDocument, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	meta := ExtractMeta(body)

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = strings.TrimSpace(meta.Title)
	}
	if title == "" {
		title = FallbackTitle(slug)
	}

	description := strings.TrimSpace(fm.Description)
	if description == "" {
		description = strings.TrimSpace(meta.Description)
	}

	return &interfaces.SourceDocument{
		FilePath:     path,
		Slug:         slug,
		FrontMatter:  fm,
		Title:        title,
		Description:  description,
		Body:         body,
		LastModified: modified,
	}, nil
}

// ReadDocument loads and parses a single document from the filesystem. Read
// and stat failures come back wrapped so callers can treat them as a
// per-file skip instead of a catalog-wide failure.
func ReadDocument(fsys fs.FS, path, slug string) (*interfaces.SourceDocument, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "markdown: read document "+path).
			WithTextCode(documentReadFailedCode)
	}

	info, err := fs.Stat(fsys, path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "markdown: stat document "+path).
			WithTextCode(documentReadFailedCode)
	}

	return BuildDocument(path, slug, data, info.ModTime())
}

// IsReadError reports whether err originated from a failed document read, as
// opposed to a parse failure on bytes that were read successfully.
func IsReadError(err error) bool {
	var wrapped *goerrors.Error
	if !errors.As(err, &wrapped) {
		return false
	}
	return wrapped.TextCode == documentReadFailedCode
}
