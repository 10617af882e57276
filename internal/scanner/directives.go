package scanner

import (
	"github.com/mfreites/markuptest/internal/directive"
	"github.com/mfreites/markuptest/internal/domain"
)

// parseSteps runs the directive lexer and attaches the host selector and
// source location to each resulting step. A selector carried by the
// directive itself (JSON form or bracket prefix) wins over the host's.
func parseSteps(raw string, host *domain.Selector, source domain.LocationRef) []domain.Step {
	steps := directive.ParseStepDirective(raw)
	for i := range steps {
		if steps[i].Selector == nil {
			steps[i].Selector = host
		}
		steps[i].Source = source
	}
	return steps
}

// parseExpectations runs the directive lexer and attaches the host selector
// and source location to each resulting expectation. Unlike steps, a nil
// selector is fine here: URL assertions have no element.
func parseExpectations(raw string, host *domain.Selector, source domain.LocationRef) []domain.Expectation {
	exps := directive.ParseExpectationDirective(raw)
	for i := range exps {
		if exps[i].Selector == nil {
			exps[i].Selector = host
		}
		exps[i].Source = source
	}
	return exps
}
