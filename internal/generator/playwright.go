package generator

import (
	"fmt"

	"github.com/mfreites/markuptest/internal/domain"
)

// PlaywrightGenerator emits Playwright test files (.spec.ts).
type PlaywrightGenerator struct{}

// NewPlaywrightGenerator creates a new PlaywrightGenerator.
func NewPlaywrightGenerator() *PlaywrightGenerator {
	return &PlaywrightGenerator{}
}

func (g *PlaywrightGenerator) Name() string { return "playwright" }

func (g *PlaywrightGenerator) FileName(c domain.Case) string {
	return caseFileName(c, ".spec.ts")
}

// Generate renders the complete test file for one case. Steps come first,
// in IR order, then expectations, also in IR order.
func (g *PlaywrightGenerator) Generate(suite domain.Suite, c domain.Case) (string, error) {
	var lines []string
	if c.Route != "" {
		lines = append(lines, fmt.Sprintf("await page.goto(%s);", jsString(c.Route)))
	}
	for _, step := range c.Steps {
		lines = append(lines, g.stepLine(step))
		if step.DelayMs > 0 {
			lines = append(lines, fmt.Sprintf("await page.waitForTimeout(%d);", step.DelayMs))
		}
	}
	for _, exp := range c.Expectations {
		lines = append(lines, g.expectationLine(exp))
	}
	return sharedEngine.render("playwright", fileData{
		Provenance: provenance(c),
		Context:    c.Context,
		Scenario:   c.Scenario,
		Lines:      lines,
	})
}

// stepLine maps one step onto a Playwright statement. The mapping is total:
// every enumerated action has an explicit rule and everything else falls
// back to a commented placeholder.
func (g *PlaywrightGenerator) stepLine(step domain.Step) string {
	loc := ""
	if step.Selector != nil {
		loc = playwrightLocator(*step.Selector)
	}
	v := jsString(step.Value)
	switch step.Action {
	case domain.ActionClick:
		return fmt.Sprintf("await %s.click();", loc)
	case domain.ActionType:
		return fmt.Sprintf("await %s.fill(%s);", loc, v)
	case domain.ActionChange:
		return fmt.Sprintf("await %s.fill(%s);", loc, v)
	case domain.ActionFocus:
		return fmt.Sprintf("await %s.focus();", loc)
	case domain.ActionBlur:
		return fmt.Sprintf("await %s.blur();", loc)
	case domain.ActionKey:
		return fmt.Sprintf("await %s.press(%s);", loc, v)
	case domain.ActionSelect:
		return fmt.Sprintf("await %s.selectOption(%s);", loc, v)
	case domain.ActionHover:
		return fmt.Sprintf("await %s.hover();", loc)
	case domain.ActionClear:
		return fmt.Sprintf("await %s.clear();", loc)
	case domain.ActionWaitFor:
		return fmt.Sprintf("await %s.waitFor();", loc)
	case domain.ActionSubmit:
		return fmt.Sprintf("await %s.evaluate((el) => el.closest('form').requestSubmit());", loc)
	}
	return customPlaceholder("step", step.Source.Raw)
}

// expectationLine maps one expectation onto a Playwright assertion.
func (g *PlaywrightGenerator) expectationLine(exp domain.Expectation) string {
	loc := ""
	if exp.Selector != nil {
		loc = playwrightLocator(*exp.Selector)
	}
	v := jsString(exp.Value)
	switch exp.Type {
	case domain.ExpectVisible:
		return fmt.Sprintf("await expect(%s).toBeVisible();", loc)
	case domain.ExpectNotVisible:
		return fmt.Sprintf("await expect(%s).toBeHidden();", loc)
	case domain.ExpectExists:
		return fmt.Sprintf("await expect(%s).toBeAttached();", loc)
	case domain.ExpectNotExists:
		return fmt.Sprintf("await expect(%s).not.toBeAttached();", loc)
	case domain.ExpectText:
		return fmt.Sprintf("await expect(%s).toContainText(%s);", loc, v)
	case domain.ExpectExactText:
		return fmt.Sprintf("await expect(%s).toHaveText(%s);", loc, v)
	case domain.ExpectValue:
		return fmt.Sprintf("await expect(%s).toHaveValue(%s);", loc, v)
	case domain.ExpectHasClass:
		return fmt.Sprintf("await expect(%s).toHaveClass(new RegExp(%s));", loc, v)
	case domain.ExpectNotHasClass:
		return fmt.Sprintf("await expect(%s).not.toHaveClass(new RegExp(%s));", loc, v)
	case domain.ExpectAria:
		name, value, hasValue := splitAria(exp.Value)
		if hasValue {
			return fmt.Sprintf("await expect(%s).toHaveAttribute(%s, %s);", loc, jsString("aria-"+name), jsString(value))
		}
		return fmt.Sprintf("await expect(%s).toHaveAttribute(%s);", loc, jsString("aria-"+name))
	case domain.ExpectURLContains:
		return fmt.Sprintf("expect(page.url()).toContain(%s);", v)
	case domain.ExpectURLExact:
		return fmt.Sprintf("await expect(page).toHaveURL(%s);", v)
	case domain.ExpectSnapshot:
		return fmt.Sprintf("await expect(%s).toHaveScreenshot();", loc)
	}
	return customPlaceholder("expectation", exp.Source.Raw)
}
