// Package markdown renders medication descriptions, which may contain Markdown.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Renderer converts descriptions to plain text summaries and HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer. Raw HTML in descriptions is omitted from the output.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

var defaultRenderer = New()

// PlainText returns the text content of src on a single line using the default renderer.
func PlainText(src string) string {
	return defaultRenderer.PlainText(src)
}

// HTML renders src using the default renderer.
func HTML(src string) (string, error) {
	return defaultRenderer.HTML(src)
}

// PlainText returns the text content of src with markup removed and
// whitespace collapsed to single spaces.
func (r *Renderer) PlainText(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	content := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(content))

	var b strings.Builder
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if node.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(content))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(content))
			}
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			b.Write(v.Label(content))
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(b.String()), " ")
}

// HTML renders src to an HTML fragment.
func (r *Renderer) HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
