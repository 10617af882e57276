package scanner

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mfreites/markuptest/internal/domain"
)

// MarkdownScanner extracts directives from documentation pages. Both raw
// HTML blocks and fenced ```html code blocks are scanned as markup, so a
// component doc can carry runnable test intent next to its prose.
type MarkdownScanner struct{}

// NewMarkdownScanner creates a new MarkdownScanner.
func NewMarkdownScanner() *MarkdownScanner {
	return &MarkdownScanner{}
}

// SupportedExtensions returns the file extensions this scanner handles.
func (s *MarkdownScanner) SupportedExtensions() []string {
	return []string{".md", ".markdown", ".mdx"}
}

// Scan parses the document with goldmark and runs the HTML scanner over
// every embedded HTML chunk, preserving source line numbers.
func (s *MarkdownScanner) Scan(filePath string, content []byte) ([]domain.Suite, error) {
	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	b := newSuiteBuilder(filePath)
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			if string(node.Language(content)) != "html" {
				return ast.WalkContinue, nil
			}
			chunk, startLine := blockText(node.Lines(), content)
			if err := scanHTMLChunk(b, chunk, startLine); err != nil {
				return ast.WalkStop, err
			}
		case *ast.HTMLBlock:
			chunk, startLine := blockText(node.Lines(), content)
			if err := scanHTMLChunk(b, chunk, startLine); err != nil {
				return ast.WalkStop, err
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, domain.NewError("parse", filePath, 0, "failed to walk markdown AST", err)
	}
	return b.suitesInOrder(), nil
}

// blockText joins a node's line segments and returns the chunk with the
// 1-based line number of its first line.
func blockText(lines *text.Segments, content []byte) ([]byte, int) {
	var buf bytes.Buffer
	startLine := 1
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if i == 0 {
			startLine = lineNumber(content, seg.Start)
		}
		buf.Write(seg.Value(content))
	}
	return buf.Bytes(), startLine
}

// lineNumber calculates the 1-based line number for a byte offset.
func lineNumber(content []byte, offset int) int {
	return bytes.Count(content[:offset], []byte("\n")) + 1
}
