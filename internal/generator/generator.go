// Package generator maps the IR onto runner-specific test source files.
// Generators are pure: identical IR input produces byte-identical output,
// with no timestamps, random identifiers or map-iteration nondeterminism.
package generator

import (
	"fmt"
	"strings"

	"github.com/mfreites/markuptest/internal/domain"
)

// Generator emits test source for one target runner.
type Generator interface {
	// Name identifies the target runner ("playwright", "cypress", ...).
	Name() string
	// FileName returns the output file name for a case, following the
	// fixed {context}.{scenario}.<ext> pattern.
	FileName(c domain.Case) string
	// Generate renders the complete test file for one case.
	Generate(suite domain.Suite, c domain.Case) (string, error)
}

// All returns every built-in generator, in stable order.
func All() []Generator {
	return []Generator{
		NewPlaywrightGenerator(),
		NewCypressGenerator(),
		NewTestingLibraryGenerator(),
	}
}

// ByName returns the built-in generator with the given name.
func ByName(name string) (Generator, error) {
	for _, g := range All() {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown generator %q", name)
}

// caseFileName builds {context}.{scenario}.<ext>, sanitizing the parts so
// the result is a single path element.
func caseFileName(c domain.Case, ext string) string {
	return fmt.Sprintf("%s.%s%s", sanitizePart(c.Context), sanitizePart(c.Scenario), ext)
}

// sanitizePart makes a context or scenario name safe as a file name
// component. Path separators, whitespace and dots collapse to hyphens.
func sanitizePart(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == '.' || r == ' ' || r == '\t':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	out = strings.Trim(out, "-")
	if out == "" {
		out = "unnamed"
	}
	return out
}

// provenance builds the machine-readable header naming the originating
// source file, context and scenario.
func provenance(c domain.Case) string {
	source := ""
	if len(c.DefinedAt) > 0 {
		source = c.DefinedAt[0].FilePath
	}
	var b strings.Builder
	b.WriteString("// Code generated by markuptest. DO NOT EDIT.\n")
	b.WriteString("// markuptest:source " + source + "\n")
	b.WriteString("// markuptest:context " + c.Context + "\n")
	b.WriteString("// markuptest:scenario " + c.Scenario)
	return b.String()
}

// jsString renders a Go string as a single-quoted JavaScript string literal.
func jsString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// splitAria splits an aria expectation value of the form "name=value" into
// the aria attribute suffix and expected value. A value without "=" asserts
// attribute presence only.
func splitAria(v string) (name, value string, hasValue bool) {
	if idx := strings.Index(v, "="); idx >= 0 {
		return strings.TrimSpace(v[:idx]), strings.TrimSpace(v[idx+1:]), true
	}
	return strings.TrimSpace(v), "", false
}

// customPlaceholder renders the fallback comment emitted for directives
// outside the supported enumerations. Generation never fails on these; the
// validator has already warned about them.
func customPlaceholder(kind, raw string) string {
	raw = strings.ReplaceAll(raw, "\n", " ")
	return fmt.Sprintf("// unsupported %s directive, fill in manually: %s", kind, raw)
}
