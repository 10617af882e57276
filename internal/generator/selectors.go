package generator

import (
	"fmt"

	"github.com/mfreites/markuptest/internal/domain"
)

// Selector-type-to-runner-API mapping. This file is the single source of
// truth for how each selector type resolves in each runner, so the targets
// cannot drift apart in selector semantics. Every mapping is total over
// SelectorType: custom falls back to a raw query in all runners.

// playwrightLocator maps a selector to a Playwright locator expression.
func playwrightLocator(sel domain.Selector) string {
	switch sel.Type {
	case domain.SelectorTestID:
		return fmt.Sprintf("page.getByTestId(%s)", jsString(sel.Value))
	case domain.SelectorRole:
		return fmt.Sprintf("page.getByRole(%s)", jsString(sel.Value))
	case domain.SelectorLabelText:
		return fmt.Sprintf("page.getByLabel(%s)", jsString(sel.Value))
	case domain.SelectorPlaceholder:
		return fmt.Sprintf("page.getByPlaceholder(%s)", jsString(sel.Value))
	case domain.SelectorCSS, domain.SelectorCustom:
		return fmt.Sprintf("page.locator(%s)", jsString(sel.Value))
	}
	return fmt.Sprintf("page.locator(%s)", jsString(sel.Value))
}

// cypressQuery maps a selector to a Cypress query expression.
func cypressQuery(sel domain.Selector) string {
	switch sel.Type {
	case domain.SelectorTestID:
		return fmt.Sprintf("cy.get(%s)", jsString(fmt.Sprintf("[data-test-id=%q]", sel.Value)))
	case domain.SelectorRole:
		return fmt.Sprintf("cy.get(%s)", jsString(fmt.Sprintf("[role=%q]", sel.Value)))
	case domain.SelectorLabelText:
		return fmt.Sprintf("cy.contains('label', %s)", jsString(sel.Value))
	case domain.SelectorPlaceholder:
		return fmt.Sprintf("cy.get(%s)", jsString(fmt.Sprintf("[placeholder=%q]", sel.Value)))
	case domain.SelectorCSS, domain.SelectorCustom:
		return fmt.Sprintf("cy.get(%s)", jsString(sel.Value))
	}
	return fmt.Sprintf("cy.get(%s)", jsString(sel.Value))
}

// testingLibraryQuery maps a selector to a Testing Library query. The
// negated flag switches getBy* to queryBy*, which is required for
// absence assertions where getBy* would throw.
func testingLibraryQuery(sel domain.Selector, negated bool) string {
	prefix := "getBy"
	if negated {
		prefix = "queryBy"
	}
	switch sel.Type {
	case domain.SelectorTestID:
		return fmt.Sprintf("screen.%sTestId(%s)", prefix, jsString(sel.Value))
	case domain.SelectorRole:
		return fmt.Sprintf("screen.%sRole(%s)", prefix, jsString(sel.Value))
	case domain.SelectorLabelText:
		return fmt.Sprintf("screen.%sLabelText(%s)", prefix, jsString(sel.Value))
	case domain.SelectorPlaceholder:
		return fmt.Sprintf("screen.%sPlaceholderText(%s)", prefix, jsString(sel.Value))
	case domain.SelectorCSS, domain.SelectorCustom:
		return fmt.Sprintf("document.querySelector(%s)", jsString(sel.Value))
	}
	return fmt.Sprintf("document.querySelector(%s)", jsString(sel.Value))
}
