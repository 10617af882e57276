package scanner

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/mfreites/markuptest/internal/domain"
)

// Fixed attribute names understood by the HTML scanner.
const (
	attrContext     = "data-test-context"
	attrScenario    = "data-test-scenario"
	attrRoute       = "data-test-route"
	attrTestID      = "data-test-id"
	attrRole        = "data-test-role"
	attrLabel       = "data-test-label"
	attrPlaceholder = "data-test-placeholder"
	attrStep        = "data-test-step"
	attrExpect      = "data-test-expect"
)

// HTMLScanner extracts directives from data-test-* attributes and comment
// macros in HTML documents. The parse is tolerant: malformed markup still
// yields whatever directives the parser could recover.
type HTMLScanner struct{}

// NewHTMLScanner creates a new HTMLScanner.
func NewHTMLScanner() *HTMLScanner {
	return &HTMLScanner{}
}

// SupportedExtensions returns the file extensions this scanner handles.
func (s *HTMLScanner) SupportedExtensions() []string {
	return []string{".html", ".htm", ".xhtml"}
}

// Scan parses the document and collects every context element with its
// descendant directives, in document order.
func (s *HTMLScanner) Scan(filePath string, content []byte) ([]domain.Suite, error) {
	b := newSuiteBuilder(filePath)
	if err := scanHTMLChunk(b, content, 1); err != nil {
		return nil, domain.NewError("parse", filePath, 0, "failed to parse HTML", err)
	}
	return b.suitesInOrder(), nil
}

// scanHTMLChunk parses an HTML fragment or document and feeds its directives
// into the builder. baseLine offsets reported positions, which lets the
// markdown scanner reuse this for embedded HTML blocks.
func scanHTMLChunk(b *suiteBuilder, content []byte, baseLine int) error {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return err
	}
	loc := newLocator(content, baseLine)
	walkHTML(doc, func(n *html.Node) bool {
		switch n.Type {
		case html.ElementNode:
			if ctx := attrValue(n, attrContext); ctx != "" {
				scanContextElement(b, loc, n, ctx)
				return false // the sub-traversal owns this subtree
			}
		case html.CommentNode:
			if strings.Contains(n.Data, macroContext) {
				line, _ := loc.find(macroContext)
				scanMacroText(b, n.Data, line, domain.ViaComment)
			}
		}
		return true
	})
	return nil
}

// walkHTML visits nodes in document order. Returning false from the visitor
// skips the node's subtree.
func walkHTML(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, visit)
	}
}

// scanContextElement reads the context-level attributes of one context
// element, then performs a scoped sub-traversal of its descendants to
// collect steps and expectations in document order. Nested context elements
// start their own case and are skipped here.
func scanContextElement(b *suiteBuilder, loc *locator, root *html.Node, context string) {
	line, col := loc.find(attrContext + `="` + context + `"`)
	header := caseHeader{
		Context:  context,
		Scenario: attrValue(root, attrScenario),
		Route:    attrValue(root, attrRoute),
		Source: domain.LocationRef{
			FilePath: b.filePath,
			Line:     line,
			Column:   col,
			Via:      domain.ViaAttribute,
		},
	}
	c := b.openCase(header)

	for child := root.FirstChild; child != nil; child = child.NextSibling {
		walkHTML(child, func(n *html.Node) bool {
			if n.Type != html.ElementNode {
				return true
			}
			if attrValue(n, attrContext) != "" {
				scanContextElement(b, loc, n, attrValue(n, attrContext))
				return false
			}
			scanDirectiveElement(b, loc, n, c)
			return true
		})
	}
}

// scanDirectiveElement handles one descendant of a context element. Elements
// without an identifier, step or expectation attribute are ignored. Steps on
// an element with no identifier are dropped: a step needs a resolvable
// target. Expectations keep working without one (URL assertions have no
// element).
func scanDirectiveElement(b *suiteBuilder, loc *locator, n *html.Node, c *domain.Case) {
	selector := elementSelector(n)
	stepRaw, hasStep := lookupAttr(n, attrStep)
	expectRaw, hasExpect := lookupAttr(n, attrExpect)
	if selector == nil && !hasStep && !hasExpect {
		return
	}

	if hasStep {
		line, col := loc.find(attrStep + `="` + stepRaw + `"`)
		if selector != nil {
			steps := parseSteps(stepRaw, selector, domain.LocationRef{
				FilePath: b.filePath,
				Line:     line,
				Column:   col,
				Via:      domain.ViaAttribute,
				Raw:      stepRaw,
			})
			for _, step := range steps {
				b.addStep(c, step)
			}
		}
	}

	if hasExpect {
		line, col := loc.find(attrExpect + `="` + expectRaw + `"`)
		exps := parseExpectations(expectRaw, selector, domain.LocationRef{
			FilePath: b.filePath,
			Line:     line,
			Column:   col,
			Via:      domain.ViaAttribute,
			Raw:      expectRaw,
		})
		for _, exp := range exps {
			b.addExpectation(c, exp)
		}
	}
}

// elementSelector derives a Selector from the element's identifier
// attributes. An explicit test id wins over the semantic variants; the
// semantic variants rank role, then label, then placeholder.
func elementSelector(n *html.Node) *domain.Selector {
	if v := attrValue(n, attrTestID); v != "" {
		return &domain.Selector{Type: domain.SelectorTestID, Value: v}
	}
	if v := attrValue(n, attrRole); v != "" {
		return &domain.Selector{Type: domain.SelectorRole, Value: v}
	}
	if v := attrValue(n, attrLabel); v != "" {
		return &domain.Selector{Type: domain.SelectorLabelText, Value: v}
	}
	if v := attrValue(n, attrPlaceholder); v != "" {
		return &domain.Selector{Type: domain.SelectorPlaceholder, Value: v}
	}
	return nil
}

func attrValue(n *html.Node, name string) string {
	v, _ := lookupAttr(n, name)
	return v
}

func lookupAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
