package scanner

import (
	"fmt"

	"github.com/mfreites/markuptest/internal/domain"
)

// caseHeader carries the context-level attributes of one discovered context
// element or macro block.
type caseHeader struct {
	Context  string
	Scenario string
	Route    string
	Type     domain.CaseType // empty means derive from route presence
	Source   domain.LocationRef
}

// suiteBuilder accumulates one file's discovered fragments into Suites,
// preserving discovery order. Repeated (context, scenario) pairs within a
// file extend the existing case: later declarations append steps and
// expectations, they never replace earlier ones. Step and expectation ids
// are assigned here, at append time, so they stay sequential and unique
// across appended fragments.
type suiteBuilder struct {
	filePath string
	order    []string
	suites   map[string]*suiteAccum
}

// suiteAccum holds cases as pointers so a *Case handed out by openCase
// stays valid while later fragments keep growing the suite.
type suiteAccum struct {
	context string
	cases   []*domain.Case
	index   map[string]*domain.Case
}

func newSuiteBuilder(filePath string) *suiteBuilder {
	return &suiteBuilder{
		filePath: filePath,
		suites:   make(map[string]*suiteAccum),
	}
}

// openCase returns the Case for the given header, creating the suite and
// case on first sight and recording the definition site either way.
func (b *suiteBuilder) openCase(h caseHeader) *domain.Case {
	acc, ok := b.suites[h.Context]
	if !ok {
		acc = &suiteAccum{
			context: h.Context,
			index:   make(map[string]*domain.Case),
		}
		b.suites[h.Context] = acc
		b.order = append(b.order, h.Context)
	}

	scenario := h.Scenario
	if scenario == "" {
		scenario = domain.DefaultScenario
	}
	id := domain.CaseID(h.Context, scenario)

	if c, ok := acc.index[id]; ok {
		c.DefinedAt = append(c.DefinedAt, h.Source)
		return c
	}

	caseType := h.Type
	if caseType == "" {
		caseType = domain.CaseUI
		if h.Route != "" {
			caseType = domain.CaseE2E
		}
	}

	c := &domain.Case{
		ID:           id,
		Context:      h.Context,
		Scenario:     scenario,
		Type:         caseType,
		Route:        h.Route,
		Steps:        []domain.Step{},
		Expectations: []domain.Expectation{},
		DefinedAt:    []domain.LocationRef{h.Source},
	}
	acc.cases = append(acc.cases, c)
	acc.index[id] = c
	return c
}

// addStep appends a step to the case and assigns its sequential id.
func (b *suiteBuilder) addStep(c *domain.Case, step domain.Step) {
	step.ID = fmt.Sprintf("step-%d", len(c.Steps)+1)
	c.Steps = append(c.Steps, step)
}

// addExpectation appends an expectation to the case and assigns its
// sequential id.
func (b *suiteBuilder) addExpectation(c *domain.Case, exp domain.Expectation) {
	exp.ID = fmt.Sprintf("exp-%d", len(c.Expectations)+1)
	c.Expectations = append(c.Expectations, exp)
}

// suitesInOrder returns the accumulated suites in discovery order.
func (b *suiteBuilder) suitesInOrder() []domain.Suite {
	out := make([]domain.Suite, 0, len(b.order))
	for _, ctx := range b.order {
		acc := b.suites[ctx]
		suite := domain.Suite{
			ID:          acc.context,
			Context:     acc.context,
			SourceFiles: []domain.SourceRef{{FilePath: b.filePath}},
			Cases:       make([]domain.Case, 0, len(acc.cases)),
		}
		for _, c := range acc.cases {
			suite.Cases = append(suite.Cases, *c)
		}
		out = append(out, suite)
	}
	return out
}
