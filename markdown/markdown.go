// Package markdown turns markdown source into flat, styled text blocks
// suitable for slide paragraphs. Inline emphasis markers are flattened:
// slide runs carry block-level styling only.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Block is one slide paragraph extracted from markdown source. Level is
// the heading level (1..6) or 0 for body text; Bullet marks list items.
type Block struct {
	Level  int
	Bullet bool
	Text   string
}

var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse converts markdown source into an ordered list of blocks.
func Parse(src string) []Block {
	source := []byte(src)
	doc := engine.Parser().Parse(text.NewReader(source))

	var blocks []Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, convert(n, source)...)
	}
	return blocks
}

func convert(n ast.Node, source []byte) []Block {
	switch node := n.(type) {
	case *ast.Heading:
		return []Block{{Level: node.Level, Text: nodeText(node, source)}}
	case *ast.List:
		var items []Block
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			items = append(items, Block{Bullet: true, Text: nodeText(c, source)})
		}
		return items
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var lines []Block
		ls := n.Lines()
		for i := 0; i < ls.Len(); i++ {
			seg := ls.At(i)
			lines = append(lines, Block{Text: strings.TrimRight(string(seg.Value(source)), "\n")})
		}
		return lines
	default:
		t := nodeText(n, source)
		if t == "" {
			return nil
		}
		return []Block{{Text: t}}
	}
}

func nodeText(n ast.Node, source []byte) string {
	return strings.TrimSpace(string(n.Text(source)))
}
