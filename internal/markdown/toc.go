package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

// ExtractTOC builds the heading outline for a Markdown body. Only heading
// levels 2 through 6 appear in the outline; the level-1 heading is the
// document title, not a section. IDs match the anchors goldmark emits when
// rendering with auto heading IDs, so outline links resolve against the
// rendered HTML. The result is never nil.
func ExtractTOC(source []byte) []interfaces.TOCEntry {
	engine := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	reader := text.NewReader(source)
	root := engine.Parser().Parse(reader)

	toc := []interfaces.TOCEntry{}

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Level < 2 || heading.Level > 6 {
			return ast.WalkContinue, nil
		}

		id := ""
		if value, ok := heading.AttributeString("id"); ok {
			if raw, ok := value.([]byte); ok {
				id = string(raw)
			}
		}

		toc = append(toc, interfaces.TOCEntry{
			ID:    id,
			Text:  string(heading.Text(source)),
			Level: heading.Level,
		})
		return ast.WalkSkipChildren, nil
	})

	return toc
}
