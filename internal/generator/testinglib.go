package generator

import (
	"fmt"

	"github.com/mfreites/markuptest/internal/domain"
)

// TestingLibraryGenerator emits Jest + Testing Library test files
// (.test.js). Route navigation degrades to a history push: there is no
// browser to drive under jsdom.
type TestingLibraryGenerator struct{}

// NewTestingLibraryGenerator creates a new TestingLibraryGenerator.
func NewTestingLibraryGenerator() *TestingLibraryGenerator {
	return &TestingLibraryGenerator{}
}

func (g *TestingLibraryGenerator) Name() string { return "testing-library" }

func (g *TestingLibraryGenerator) FileName(c domain.Case) string {
	return caseFileName(c, ".test.js")
}

// Generate renders the complete test file for one case.
func (g *TestingLibraryGenerator) Generate(suite domain.Suite, c domain.Case) (string, error) {
	var lines []string
	if c.Route != "" {
		lines = append(lines, fmt.Sprintf("window.history.pushState({}, '', %s);", jsString(c.Route)))
	}
	for _, step := range c.Steps {
		lines = append(lines, g.stepLine(step))
		if step.DelayMs > 0 {
			lines = append(lines, fmt.Sprintf("await new Promise((r) => setTimeout(r, %d));", step.DelayMs))
		}
	}
	for _, exp := range c.Expectations {
		lines = append(lines, g.expectationLine(exp))
	}
	return sharedEngine.render("testing-library", fileData{
		Provenance: provenance(c),
		Context:    c.Context,
		Scenario:   c.Scenario,
		Lines:      lines,
	})
}

func (g *TestingLibraryGenerator) stepLine(step domain.Step) string {
	el := ""
	if step.Selector != nil {
		el = testingLibraryQuery(*step.Selector, false)
	}
	v := jsString(step.Value)
	switch step.Action {
	case domain.ActionClick:
		return fmt.Sprintf("await user.click(%s);", el)
	case domain.ActionType:
		return fmt.Sprintf("await user.type(%s, %s);", el, v)
	case domain.ActionChange:
		return fmt.Sprintf("fireEvent.change(%s, { target: { value: %s } });", el, v)
	case domain.ActionFocus:
		return fmt.Sprintf("%s.focus();", el)
	case domain.ActionBlur:
		return fmt.Sprintf("%s.blur();", el)
	case domain.ActionKey:
		return fmt.Sprintf("await user.type(%s, %s);", el, v)
	case domain.ActionSelect:
		return fmt.Sprintf("await user.selectOptions(%s, %s);", el, v)
	case domain.ActionHover:
		return fmt.Sprintf("await user.hover(%s);", el)
	case domain.ActionClear:
		return fmt.Sprintf("await user.clear(%s);", el)
	case domain.ActionWaitFor:
		return fmt.Sprintf("await waitFor(() => expect(%s).toBeInTheDocument());", el)
	case domain.ActionSubmit:
		return fmt.Sprintf("fireEvent.submit(%s.closest('form'));", el)
	}
	return customPlaceholder("step", step.Source.Raw)
}

func (g *TestingLibraryGenerator) expectationLine(exp domain.Expectation) string {
	el, negEl := "", ""
	if exp.Selector != nil {
		el = testingLibraryQuery(*exp.Selector, false)
		negEl = testingLibraryQuery(*exp.Selector, true)
	}
	v := jsString(exp.Value)
	switch exp.Type {
	case domain.ExpectVisible:
		return fmt.Sprintf("expect(%s).toBeVisible();", el)
	case domain.ExpectNotVisible:
		return fmt.Sprintf("expect(%s).not.toBeVisible();", negEl)
	case domain.ExpectExists:
		return fmt.Sprintf("expect(%s).toBeInTheDocument();", el)
	case domain.ExpectNotExists:
		return fmt.Sprintf("expect(%s).not.toBeInTheDocument();", negEl)
	case domain.ExpectText:
		return fmt.Sprintf("expect(%s).toHaveTextContent(%s);", el, v)
	case domain.ExpectExactText:
		return fmt.Sprintf("expect(%s.textContent).toBe(%s);", el, v)
	case domain.ExpectValue:
		return fmt.Sprintf("expect(%s).toHaveValue(%s);", el, v)
	case domain.ExpectHasClass:
		return fmt.Sprintf("expect(%s).toHaveClass(%s);", el, v)
	case domain.ExpectNotHasClass:
		return fmt.Sprintf("expect(%s).not.toHaveClass(%s);", el, v)
	case domain.ExpectAria:
		name, value, hasValue := splitAria(exp.Value)
		if hasValue {
			return fmt.Sprintf("expect(%s).toHaveAttribute(%s, %s);", el, jsString("aria-"+name), jsString(value))
		}
		return fmt.Sprintf("expect(%s).toHaveAttribute(%s);", el, jsString("aria-"+name))
	case domain.ExpectURLContains:
		return fmt.Sprintf("expect(window.location.href).toContain(%s);", v)
	case domain.ExpectURLExact:
		return fmt.Sprintf("expect(window.location.href).toBe(%s);", v)
	case domain.ExpectSnapshot:
		return fmt.Sprintf("expect(%s).toMatchSnapshot();", el)
	}
	return customPlaceholder("expectation", exp.Source.Raw)
}
