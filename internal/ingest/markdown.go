package ingest

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown report exports using goldmark.
// Headings and block content are emitted as lines in document order; the
// downstream section scanner only cares about line prefixes, so heading
// markers and other inline syntax are stripped.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Lines(r io.Reader, filename string) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []string
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if h, ok := c.(*ast.Heading); ok {
				if title := strings.TrimSpace(string(h.Text(src))); title != "" {
					lines = append(lines, title)
				}
				continue
			}
			if segs := c.Lines(); segs != nil && segs.Len() > 0 {
				for i := 0; i < segs.Len(); i++ {
					seg := segs.At(i)
					line := strings.TrimRight(string(seg.Value(src)), "\n")
					if strings.TrimSpace(line) != "" {
						lines = append(lines, line)
					}
				}
				continue
			}
			// Container blocks (lists, quotes) carry no lines themselves.
			walk(c)
		}
	}
	walk(doc)

	return lines, nil
}
