package scanner

import (
	"strings"

	"github.com/mfreites/markuptest/internal/domain"
)

// Comment macro keywords. A @test-context line opens a new block; the other
// keywords accumulate into the open block until the next @test-context.
const (
	macroContext  = "@test-context"
	macroScenario = "@test-scenario"
	macroRoute    = "@test-route"
	macroType     = "@test-type"
	macroSteps    = "@steps"
	macroExpect   = "@expect"
)

// MacroScanner extracts comment macro blocks from script sources
// (JavaScript, TypeScript, Vue, Svelte and friends). It does not parse the
// host language: comments are located with a small state machine that skips
// string literals, so directive-looking text inside strings is not picked
// up.
type MacroScanner struct{}

// NewMacroScanner creates a new MacroScanner.
func NewMacroScanner() *MacroScanner {
	return &MacroScanner{}
}

// SupportedExtensions returns the file extensions this scanner handles.
// It also serves as the registry fallback.
func (s *MacroScanner) SupportedExtensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".vue", ".svelte"}
}

// Scan collects every comment in the file and interprets macro lines found
// inside them, in document order.
func (s *MacroScanner) Scan(filePath string, content []byte) ([]domain.Suite, error) {
	b := newSuiteBuilder(filePath)
	var lines []macroLine
	for _, c := range extractComments(content) {
		lines = append(lines, parseMacroLines(c.text, c.line)...)
	}
	emitMacroBlocks(b, lines, domain.ViaPattern)
	return b.suitesInOrder(), nil
}

// scanMacroText interprets the text of a single comment (used for HTML
// comment nodes, which arrive via the HTML parser rather than the comment
// state machine).
func scanMacroText(b *suiteBuilder, text string, baseLine int, via domain.Via) {
	emitMacroBlocks(b, parseMacroLines(text, baseLine), via)
}

// macroLine is one recognized @-directive line inside a comment.
type macroLine struct {
	line  int
	key   string
	value string
}

// parseMacroLines scans comment text line by line, stripping comment
// decoration ("*", "//", "<!--", "-->") before matching macro keywords.
// Lines that match no keyword are ignored, so macros can sit inside prose.
func parseMacroLines(text string, baseLine int) []macroLine {
	var out []macroLine
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "<!--")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSuffix(line, "-->")
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if !strings.HasPrefix(line, "@") {
			continue
		}
		key, value := splitMacro(line)
		if key == "" {
			continue
		}
		out = append(out, macroLine{line: baseLine + i, key: key, value: value})
	}
	return out
}

// splitMacro matches a line against the known macro keywords. The value is
// whatever follows the keyword, with one optional leading colon removed.
// Longest keyword first, so @test-scenario is not swallowed by a prefix.
func splitMacro(line string) (key, value string) {
	for _, k := range []string{macroScenario, macroContext, macroRoute, macroType, macroExpect, macroSteps} {
		if strings.HasPrefix(line, k) {
			rest := line[len(k):]
			if rest != "" && rest[0] != ':' && rest[0] != ' ' && rest[0] != '\t' {
				continue // keyword is a prefix of a longer word
			}
			rest = strings.TrimSpace(rest)
			rest = strings.TrimPrefix(rest, ":")
			return k, strings.TrimSpace(rest)
		}
	}
	return "", ""
}

// emitMacroBlocks groups macro lines into blocks delimited by @test-context
// and feeds each block through the builder. Header macros seen before the
// first @steps/@expect of a block apply to it; a second @steps/@expect line
// appends in order.
func emitMacroBlocks(b *suiteBuilder, lines []macroLine, via domain.Via) {
	var header *caseHeader
	var c *domain.Case

	open := func() *domain.Case {
		if c == nil && header != nil {
			c = b.openCase(*header)
		}
		return c
	}

	for _, ml := range lines {
		switch ml.key {
		case macroContext:
			// Close the previous block, even if it had no directives:
			// an empty case is still worth an info finding downstream.
			if header != nil {
				open()
			}
			header = &caseHeader{
				Context: ml.value,
				Source: domain.LocationRef{
					FilePath: b.filePath,
					Line:     ml.line,
					Via:      via,
				},
			}
			c = nil
		case macroScenario:
			if header != nil && c == nil {
				header.Scenario = ml.value
			}
		case macroRoute:
			if header != nil && c == nil {
				header.Route = ml.value
			}
		case macroType:
			if header != nil && c == nil {
				switch strings.ToLower(ml.value) {
				case "ui":
					header.Type = domain.CaseUI
				case "unit":
					header.Type = domain.CaseUnit
				case "e2e":
					header.Type = domain.CaseE2E
				}
			}
		case macroSteps:
			if header == nil {
				continue
			}
			cc := open()
			source := domain.LocationRef{FilePath: b.filePath, Line: ml.line, Via: via, Raw: ml.value}
			for _, step := range parseSteps(ml.value, nil, source) {
				// Macro-declared steps need a bracket selector; there
				// is no host element to fall back to.
				if step.Selector == nil {
					continue
				}
				b.addStep(cc, step)
			}
		case macroExpect:
			if header == nil {
				continue
			}
			cc := open()
			source := domain.LocationRef{FilePath: b.filePath, Line: ml.line, Via: via, Raw: ml.value}
			for _, exp := range parseExpectations(ml.value, nil, source) {
				b.addExpectation(cc, exp)
			}
		}
	}
	if header != nil {
		open()
	}
}

// scriptComment is one comment found in a script source.
type scriptComment struct {
	line int // 1-based line of the comment's first character
	text string
}

// extractComments walks script source and returns its comments. String
// literals (single, double, backtick) are skipped so that directive-looking
// text inside them is ignored. HTML-style comments are recognized too, for
// the template sections of Vue and Svelte files.
func extractComments(content []byte) []scriptComment {
	var comments []scriptComment
	line := 1
	i := 0
	n := len(content)

	for i < n {
		c := content[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == '\'' || c == '"' || c == '`':
			i = skipString(content, i, &line)
		case c == '/' && i+1 < n && content[i+1] == '/':
			start := i + 2
			for i < n && content[i] != '\n' {
				i++
			}
			comments = append(comments, scriptComment{line: line, text: string(content[start:i])})
		case c == '/' && i+1 < n && content[i+1] == '*':
			startLine := line
			start := i + 2
			i += 2
			for i < n && !(content[i] == '*' && i+1 < n && content[i+1] == '/') {
				if content[i] == '\n' {
					line++
				}
				i++
			}
			comments = append(comments, scriptComment{line: startLine, text: string(content[start:min(i, n)])})
			i += 2
		case c == '<' && i+3 < n && string(content[i:i+4]) == "<!--":
			startLine := line
			start := i + 4
			i += 4
			for i < n && !(content[i] == '-' && i+2 < n && string(content[i:i+3]) == "-->") {
				if content[i] == '\n' {
					line++
				}
				i++
			}
			comments = append(comments, scriptComment{line: startLine, text: string(content[start:min(i, n)])})
			i += 3
		default:
			i++
		}
	}
	return comments
}

// skipString advances past a string literal, honoring backslash escapes.
// Backtick strings may span lines.
func skipString(content []byte, i int, line *int) int {
	quote := content[i]
	i++
	for i < len(content) {
		c := content[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c == '\n' {
			*line++
			if quote != '`' {
				return i // unterminated single-line string, bail out
			}
		}
		if c == quote {
			return i + 1
		}
		i++
	}
	return i
}
