package generator

import (
	"fmt"

	"github.com/mfreites/markuptest/internal/domain"
)

// CypressGenerator emits Cypress test files (.cy.js).
type CypressGenerator struct{}

// NewCypressGenerator creates a new CypressGenerator.
func NewCypressGenerator() *CypressGenerator {
	return &CypressGenerator{}
}

func (g *CypressGenerator) Name() string { return "cypress" }

func (g *CypressGenerator) FileName(c domain.Case) string {
	return caseFileName(c, ".cy.js")
}

// Generate renders the complete test file for one case.
func (g *CypressGenerator) Generate(suite domain.Suite, c domain.Case) (string, error) {
	var lines []string
	if c.Route != "" {
		lines = append(lines, fmt.Sprintf("cy.visit(%s);", jsString(c.Route)))
	}
	for _, step := range c.Steps {
		lines = append(lines, g.stepLine(step))
		if step.DelayMs > 0 {
			lines = append(lines, fmt.Sprintf("cy.wait(%d);", step.DelayMs))
		}
	}
	for _, exp := range c.Expectations {
		lines = append(lines, g.expectationLine(exp))
	}
	return sharedEngine.render("cypress", fileData{
		Provenance: provenance(c),
		Context:    c.Context,
		Scenario:   c.Scenario,
		Lines:      lines,
	})
}

func (g *CypressGenerator) stepLine(step domain.Step) string {
	loc := ""
	if step.Selector != nil {
		loc = cypressQuery(*step.Selector)
	}
	v := jsString(step.Value)
	switch step.Action {
	case domain.ActionClick:
		return fmt.Sprintf("%s.click();", loc)
	case domain.ActionType:
		return fmt.Sprintf("%s.type(%s);", loc, v)
	case domain.ActionChange:
		return fmt.Sprintf("%s.clear().type(%s).trigger('change');", loc, v)
	case domain.ActionFocus:
		return fmt.Sprintf("%s.focus();", loc)
	case domain.ActionBlur:
		return fmt.Sprintf("%s.blur();", loc)
	case domain.ActionKey:
		return fmt.Sprintf("%s.trigger('keydown', { key: %s });", loc, v)
	case domain.ActionSelect:
		return fmt.Sprintf("%s.select(%s);", loc, v)
	case domain.ActionHover:
		return fmt.Sprintf("%s.trigger('mouseover');", loc)
	case domain.ActionClear:
		return fmt.Sprintf("%s.clear();", loc)
	case domain.ActionWaitFor:
		return fmt.Sprintf("%s.should('exist');", loc)
	case domain.ActionSubmit:
		return fmt.Sprintf("%s.parents('form').first().submit();", loc)
	}
	return customPlaceholder("step", step.Source.Raw)
}

func (g *CypressGenerator) expectationLine(exp domain.Expectation) string {
	loc := ""
	if exp.Selector != nil {
		loc = cypressQuery(*exp.Selector)
	}
	v := jsString(exp.Value)
	switch exp.Type {
	case domain.ExpectVisible:
		return fmt.Sprintf("%s.should('be.visible');", loc)
	case domain.ExpectNotVisible:
		return fmt.Sprintf("%s.should('not.be.visible');", loc)
	case domain.ExpectExists:
		return fmt.Sprintf("%s.should('exist');", loc)
	case domain.ExpectNotExists:
		return fmt.Sprintf("%s.should('not.exist');", loc)
	case domain.ExpectText:
		return fmt.Sprintf("%s.should('contain.text', %s);", loc, v)
	case domain.ExpectExactText:
		return fmt.Sprintf("%s.should('have.text', %s);", loc, v)
	case domain.ExpectValue:
		return fmt.Sprintf("%s.should('have.value', %s);", loc, v)
	case domain.ExpectHasClass:
		return fmt.Sprintf("%s.should('have.class', %s);", loc, v)
	case domain.ExpectNotHasClass:
		return fmt.Sprintf("%s.should('not.have.class', %s);", loc, v)
	case domain.ExpectAria:
		name, value, hasValue := splitAria(exp.Value)
		if hasValue {
			return fmt.Sprintf("%s.should('have.attr', %s, %s);", loc, jsString("aria-"+name), jsString(value))
		}
		return fmt.Sprintf("%s.should('have.attr', %s);", loc, jsString("aria-"+name))
	case domain.ExpectURLContains:
		return fmt.Sprintf("cy.url().should('include', %s);", v)
	case domain.ExpectURLExact:
		return fmt.Sprintf("cy.url().should('eq', %s);", v)
	case domain.ExpectSnapshot:
		return fmt.Sprintf("%s.screenshot();", loc)
	}
	return customPlaceholder("expectation", exp.Source.Raw)
}
